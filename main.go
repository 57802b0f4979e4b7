package main

import "github.com/abhayror17/Excel-Comparator/cmd"

func main() {
	cmd.Execute()
}

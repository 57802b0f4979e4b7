package compare

// Summarize rolls per-sheet results up into overall statistics. The Identical
// verdict is true iff every compared sheet has zero modified, zero only-left,
// and zero only-right rows.
func Summarize(sheets map[string]*SheetResult) Stats {
	stats := Stats{Identical: true}

	for _, sheet := range sheets {
		stats.SheetsCompared++
		stats.TotalIdentical += sheet.Summary.Identical
		stats.TotalModified += sheet.Summary.Modified
		stats.TotalOnlyLeft += sheet.Summary.OnlyLeft
		stats.TotalOnlyRight += sheet.Summary.OnlyRight

		if sheet.HasDifferences() {
			stats.SheetsWithDifferences++
			stats.Identical = false
		}
	}

	return stats
}

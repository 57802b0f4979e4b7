package cmd

import (
	"context"
	"fmt"

	"github.com/abhayror17/Excel-Comparator/core/config"
	"github.com/abhayror17/Excel-Comparator/core/database"
	"github.com/abhayror17/Excel-Comparator/core/logger"
	"github.com/abhayror17/Excel-Comparator/feature/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var historyLimit int

// historyCmd lists recently persisted comparison runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent comparison runs",
	Long:  `Lists the most recent comparison runs persisted to the database, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	runs, err := history.NewService(db, l).List(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		l.Info("No comparison runs recorded yet")
		return nil
	}

	for _, run := range runs {
		l.Info("Run",
			zap.String("id", run.ID),
			zap.Time("created_at", run.CreatedAt),
			zap.String("left", run.LeftName),
			zap.String("right", run.RightName),
			zap.Int("sheets_compared", run.SheetsCompared),
			zap.Int("modified", run.TotalModified),
			zap.Int("only_left", run.TotalOnlyLeft),
			zap.Int("only_right", run.TotalOnlyRight),
			zap.Bool("identical", run.Identical),
			zap.Int64("duration_ms", run.DurationMS),
		)
	}
	return nil
}

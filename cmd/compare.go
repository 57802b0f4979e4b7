package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhayror17/Excel-Comparator/core/compare"
	"github.com/abhayror17/Excel-Comparator/core/config"
	"github.com/abhayror17/Excel-Comparator/core/database"
	"github.com/abhayror17/Excel-Comparator/core/logger"
	"github.com/abhayror17/Excel-Comparator/core/storage"
	"github.com/abhayror17/Excel-Comparator/core/workbook"
	"github.com/abhayror17/Excel-Comparator/feature/comparison"
	"github.com/abhayror17/Excel-Comparator/feature/comparison/export"
	"github.com/abhayror17/Excel-Comparator/feature/history"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	outputPath     string
	jsonPath       string
	bucketPath     string
	identifierList string
	strictKeys     bool
	fromBucket     bool
)

// compareCmd compares two workbooks sheet by sheet.
var compareCmd = &cobra.Command{
	Use:   "compare <left> <right>",
	Short: "Compare two Excel workbooks sheet by sheet",
	Long: `Compare two Excel workbooks sheet by sheet.

Rows are matched by a composite key built from the identifier fields and
classified as identical, modified, or present on only one side. The verdict
is reported as data; the command fails only on input errors.

Examples:
  # Compare two local workbooks
  compare old.xlsx new.xlsx

  # Write the difference report next to the inputs
  compare old.xlsx new.xlsx --output report.xlsx --json report.json

  # Match rows on a custom identifier set
  compare old.xlsx new.xlsx --identifiers "Channel Name,Program Date"

  # Compare two objects from the configured bucket
  compare exports/old.xlsx exports/new.xlsx --from-bucket`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path for the xlsx difference report")
	compareCmd.Flags().StringVar(&jsonPath, "json", "", "Path for the JSON difference report")
	compareCmd.Flags().StringVar(&bucketPath, "to-bucket", "", "Object name for uploading the xlsx report to the configured bucket")
	compareCmd.Flags().StringVar(&identifierList, "identifiers", "", "Comma-separated identifier fields (defaults to configured list)")
	compareCmd.Flags().BoolVar(&strictKeys, "strict", false, "Fail a sheet when duplicate composite keys are found")
	compareCmd.Flags().BoolVar(&fromBucket, "from-bucket", false, "Treat arguments as object names in the configured bucket")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// Open both sources
	left, err := openSource(cfg, args[0])
	if err != nil {
		return fmt.Errorf("failed to open left workbook: %w", err)
	}
	defer closeSource(left)

	right, err := openSource(cfg, args[1])
	if err != nil {
		return fmt.Errorf("failed to open right workbook: %w", err)
	}
	defer closeSource(right)

	// Connect the optional run-history recorder
	var recorder comparison.Recorder
	if db, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional database connection failed, run will not be recorded", zap.Error(err))
	} else {
		svc := history.NewService(db, l)
		if err := svc.Migrate(); err != nil {
			l.Warn("Failed to migrate run history table", zap.Error(err))
		} else {
			recorder = svc
		}
	}

	opts := compare.Options{
		Identifiers: cfg.Compare.IdentifierList(),
		Strict:      strictKeys || cfg.Compare.Strict,
		Observer:    compare.NewProgressObserver(l, cfg.Compare.ProgressInterval),
	}
	if identifierList != "" {
		opts.Identifiers = splitIdentifierFlag(identifierList)
	}

	svc := comparison.NewService(l, recorder)
	report, err := svc.Compare(ctx, left, right, opts)
	if err != nil {
		return err
	}

	logReport(l, report)

	if outputPath != "" {
		if err := export.SaveExcel(report, outputPath); err != nil {
			return fmt.Errorf("failed to write xlsx report: %w", err)
		}
		l.Info("Wrote xlsx report", zap.String("path", outputPath))
	}
	if jsonPath != "" {
		if err := export.SaveJSON(report, jsonPath); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		l.Info("Wrote JSON report", zap.String("path", jsonPath))
	}
	if bucketPath != "" {
		if err := uploadReport(ctx, cfg, report, bucketPath); err != nil {
			return fmt.Errorf("failed to upload report: %w", err)
		}
		l.Info("Uploaded xlsx report",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", bucketPath),
		)
	}

	return nil
}

// uploadReport renders the xlsx report in memory and puts it in the
// configured bucket.
func uploadReport(ctx context.Context, cfg *config.Config, report *compare.Report, object string) error {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	var buf bytes.Buffer
	if err := export.WriteExcel(&buf, report); err != nil {
		return err
	}

	_, err = client.PutObject(ctx, cfg.Storage.Bucket, object, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	return err
}

// openSource opens a local workbook, or a bucket object when --from-bucket
// is set.
func openSource(cfg *config.Config, name string) (workbook.Source, error) {
	if !fromBucket {
		return workbook.OpenFile(name)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return workbook.NewObjectSource(client, cfg.Storage.Bucket, name), nil
}

func closeSource(s workbook.Source) {
	if c, ok := s.(io.Closer); ok {
		_ = c.Close()
	}
}

func splitIdentifierFlag(value string) []string {
	parts := strings.Split(value, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

// logReport emits the data-quality warnings and the overall verdict.
// Per-sheet summaries are already logged by the progress observer.
func logReport(l *zap.Logger, report *compare.Report) {
	for name, reason := range report.Failed {
		l.Error("Sheet comparison failed", zap.String("sheet", name), zap.String("reason", reason))
	}
	if len(report.SkippedLeft) > 0 {
		l.Warn("Sheets only in left workbook", zap.Strings("sheets", report.SkippedLeft))
	}
	if len(report.SkippedRight) > 0 {
		l.Warn("Sheets only in right workbook", zap.Strings("sheets", report.SkippedRight))
	}

	if report.Stats.Identical {
		l.Info("Workbooks are identical",
			zap.Int("sheets_compared", report.Stats.SheetsCompared),
		)
		return
	}
	l.Info("Workbooks differ",
		zap.Int("sheets_compared", report.Stats.SheetsCompared),
		zap.Int("sheets_with_differences", report.Stats.SheetsWithDifferences),
		zap.Int("total_modified", report.Stats.TotalModified),
		zap.Int("total_only_left", report.Stats.TotalOnlyLeft),
		zap.Int("total_only_right", report.Stats.TotalOnlyRight),
	)
}

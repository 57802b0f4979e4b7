package comparison

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/abhayror17/Excel-Comparator/core/compare"
	"github.com/abhayror17/Excel-Comparator/core/workbook"

	"go.uber.org/zap"
)

// ErrNoCommonSheets is returned when the two workbooks share no sheet names.
// Nothing can be compared, so the whole run aborts with no partial report.
var ErrNoCommonSheets = errors.New("no common sheets between workbooks")

// Recorder persists finished runs. Implemented by the history feature; a nil
// recorder disables persistence.
type Recorder interface {
	RecordRun(ctx context.Context, report *compare.Report, duration time.Duration) error
}

// Service orchestrates whole-workbook comparisons.
type Service struct {
	logger   *zap.Logger
	recorder Recorder
}

// NewService creates a new comparison service. recorder may be nil.
func NewService(logger *zap.Logger, recorder Recorder) *Service {
	return &Service{logger: logger, recorder: recorder}
}

// Compare runs a full comparison of two workbook sources. Sheets present in
// only one workbook are skipped; a sheet that cannot be read or reconciled is
// recorded as failed without blocking the remaining sheets. The only fatal
// conditions are an unreadable workbook and an empty sheet intersection.
func (s *Service) Compare(ctx context.Context, left, right workbook.Source, opts compare.Options) (*compare.Report, error) {
	start := time.Now()

	leftSheets, err := left.SheetNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets of %s: %w", left.Name(), err)
	}
	rightSheets, err := right.SheetNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets of %s: %w", right.Name(), err)
	}

	common, skippedLeft, skippedRight := splitSheets(leftSheets, rightSheets)
	if len(common) == 0 {
		return nil, fmt.Errorf("%w: %s vs %s", ErrNoCommonSheets, left.Name(), right.Name())
	}

	report := &compare.Report{
		LeftName:     left.Name(),
		RightName:    right.Name(),
		Sheets:       make(map[string]*compare.SheetResult, len(common)),
		SkippedLeft:  skippedLeft,
		SkippedRight: skippedRight,
	}

	for _, sheet := range common {
		result, err := s.compareSheet(ctx, sheet, left, right, opts)
		if err != nil {
			s.logger.Warn("Sheet comparison failed",
				zap.String("sheet", sheet),
				zap.Error(err),
			)
			if report.Failed == nil {
				report.Failed = make(map[string]string)
			}
			report.Failed[sheet] = err.Error()
			continue
		}
		report.Sheets[sheet] = result
	}

	report.Stats = compare.Summarize(report.Sheets)

	duration := time.Since(start)
	s.logger.Info("Comparison finished",
		zap.String("left", report.LeftName),
		zap.String("right", report.RightName),
		zap.Int("sheets_compared", report.Stats.SheetsCompared),
		zap.Int("sheets_with_differences", report.Stats.SheetsWithDifferences),
		zap.Bool("identical", report.Stats.Identical),
		zap.Duration("duration", duration),
	)

	if s.recorder != nil {
		if err := s.recorder.RecordRun(ctx, report, duration); err != nil {
			// History is best-effort; the report itself is the deliverable.
			s.logger.Warn("Failed to persist comparison run", zap.Error(err))
		}
	}

	return report, nil
}

func (s *Service) compareSheet(ctx context.Context, sheet string, left, right workbook.Source, opts compare.Options) (*compare.SheetResult, error) {
	leftData, err := left.Sheet(ctx, sheet)
	if err != nil {
		return nil, err
	}
	rightData, err := right.Sheet(ctx, sheet)
	if err != nil {
		return nil, err
	}
	return compare.CompareSheet(sheet, leftData, rightData, opts)
}

// splitSheets computes the sheet intersection (preserving the left workbook's
// order) and the one-sided leftovers (sorted).
func splitSheets(left, right []string) (common, leftOnly, rightOnly []string) {
	rightSet := make(map[string]struct{}, len(right))
	for _, name := range right {
		rightSet[name] = struct{}{}
	}
	leftSet := make(map[string]struct{}, len(left))
	for _, name := range left {
		leftSet[name] = struct{}{}
	}

	for _, name := range left {
		if _, ok := rightSet[name]; ok {
			common = append(common, name)
		} else {
			leftOnly = append(leftOnly, name)
		}
	}
	for _, name := range right {
		if _, ok := leftSet[name]; !ok {
			rightOnly = append(rightOnly, name)
		}
	}

	sort.Strings(leftOnly)
	sort.Strings(rightOnly)
	return common, leftOnly, rightOnly
}

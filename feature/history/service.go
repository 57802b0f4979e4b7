package history

import (
	"context"
	"time"

	"github.com/abhayror17/Excel-Comparator/core/compare"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service records and retrieves comparison runs.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new history service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Migrate creates or updates the comparison_runs table.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&Run{})
}

// RecordRun persists the aggregate outcome of a completed comparison.
// It satisfies the comparison.Recorder interface.
func (s *Service) RecordRun(ctx context.Context, report *compare.Report, duration time.Duration) error {
	run := Run{
		ID:                    uuid.NewString(),
		LeftName:              report.LeftName,
		RightName:             report.RightName,
		SheetsCompared:        report.Stats.SheetsCompared,
		SheetsWithDifferences: report.Stats.SheetsWithDifferences,
		TotalIdentical:        report.Stats.TotalIdentical,
		TotalModified:         report.Stats.TotalModified,
		TotalOnlyLeft:         report.Stats.TotalOnlyLeft,
		TotalOnlyRight:        report.Stats.TotalOnlyRight,
		Identical:             report.Stats.Identical,
		DurationMS:            duration.Milliseconds(),
	}

	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return err
	}

	s.logger.Info("Recorded comparison run",
		zap.String("id", run.ID),
		zap.String("left", run.LeftName),
		zap.String("right", run.RightName),
		zap.Bool("identical", run.Identical),
	)
	return nil
}

// List returns the most recent runs, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []Run
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Get returns a single run by ID. Returns gorm.ErrRecordNotFound when no
// run with that ID exists.
func (s *Service) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	if err := s.db.WithContext(ctx).First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

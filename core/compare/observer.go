package compare

import "go.uber.org/zap"

// Outcome identifies which of the four collections a key was classified into.
type Outcome string

const (
	OutcomeIdentical Outcome = "identical"
	OutcomeModified  Outcome = "modified"
	OutcomeOnlyLeft  Outcome = "only_left"
	OutcomeOnlyRight Outcome = "only_right"
)

// Observer receives checkpoint callbacks from the reconciler and the sheet
// comparator. It decouples progress reporting from the computation itself:
// the core never writes to any output, callers subscribe instead.
type Observer interface {
	// KeyProcessed is invoked after each key is classified.
	KeyProcessed(key string, outcome Outcome)

	// SheetCompleted is invoked once per sheet with its final summary.
	SheetCompleted(sheet string, summary SheetSummary)
}

// NopObserver discards all callbacks. It is the default observer.
type NopObserver struct{}

func (NopObserver) KeyProcessed(string, Outcome)        {}
func (NopObserver) SheetCompleted(string, SheetSummary) {}

// ProgressObserver logs progress through a zap logger: a heartbeat every
// Interval processed keys and a summary line per completed sheet.
type ProgressObserver struct {
	logger   *zap.Logger
	interval int
	count    int
}

// NewProgressObserver creates a ProgressObserver. An interval <= 0 defaults
// to 1000 keys.
func NewProgressObserver(logger *zap.Logger, interval int) *ProgressObserver {
	if interval <= 0 {
		interval = 1000
	}
	return &ProgressObserver{logger: logger, interval: interval}
}

func (p *ProgressObserver) KeyProcessed(key string, outcome Outcome) {
	p.count++
	if p.count%p.interval == 0 {
		p.logger.Info("Comparison progress", zap.Int("keys_processed", p.count))
	}
}

func (p *ProgressObserver) SheetCompleted(sheet string, summary SheetSummary) {
	p.count = 0
	p.logger.Info("Sheet compared",
		zap.String("sheet", sheet),
		zap.Int("identical", summary.Identical),
		zap.Int("modified", summary.Modified),
		zap.Int("only_left", summary.OnlyLeft),
		zap.Int("only_right", summary.OnlyRight),
	)
}

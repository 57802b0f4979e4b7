package comparison

import (
	"github.com/abhayror17/Excel-Comparator/core/compare"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the comparison service and handler into the loader system.
type Feature struct {
	service *Service
	cfg     compare.Config
}

// NewFeature creates the comparison feature. recorder may be nil when the
// history database is unavailable.
func NewFeature(logger *zap.Logger, cfg compare.Config, recorder Recorder) *Feature {
	return &Feature{
		service: NewService(logger, recorder),
		cfg:     cfg,
	}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "comparison"
}

// IsEnabled reports whether the feature loads. Comparison is the point of the
// service, so it is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the comparison routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.cfg).RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}

package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("Loads enabled and skips disabled", func(t *testing.T) {
		enabled := &stubFeature{name: "a", enabled: true}
		disabled := &stubFeature{name: "b", enabled: false}

		mgr := NewManager()
		mgr.Register(enabled)
		mgr.Register(disabled)

		assert.NoError(t, mgr.LoadAll(app))
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("Propagates load errors with feature name", func(t *testing.T) {
		failing := &stubFeature{name: "broken", enabled: true, err: errors.New("boom")}

		mgr := NewManager()
		mgr.Register(failing)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})
}

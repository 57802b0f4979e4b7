package history

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for comparison run history.
type Handler struct {
	service *Service
}

// NewHandler creates a new history handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists recent comparison runs.
// @Summary List recent comparison runs
// @Description Returns the most recent comparison runs, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of runs to return (default 20)"
// @Success 200 {array} Run
// @Failure 500 {object} map[string]string
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	runs, err := h.service.List(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGet returns a single comparison run.
// @Summary Get a comparison run
// @Description Returns one comparison run by its ID.
// @Tags history
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Run
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /history/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	run, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}

package comparison

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/abhayror17/Excel-Comparator/core/compare"
	"github.com/abhayror17/Excel-Comparator/core/logger"
	"github.com/abhayror17/Excel-Comparator/core/workbook"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for workbook comparisons.
type Handler struct {
	service *Service
	cfg     compare.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg compare.Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes registers the comparison routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/comparison")
	group.Post("/", h.HandleCompare)
	group.Get("/identifiers", h.HandleIdentifiers)
}

// HandleCompare compares two uploaded workbooks.
// @Summary Compare Two Workbooks
// @Description Uploads two .xlsx workbooks and returns the identifier-keyed difference report. Sheets present in only one workbook are skipped.
// @Tags comparison
// @Accept multipart/form-data
// @Produce json
// @Param left formData file true "Left workbook (.xlsx)"
// @Param right formData file true "Right workbook (.xlsx)"
// @Param identifiers formData string false "Comma-separated identifier fields (defaults to configured list)"
// @Param strict formData boolean false "Fail sheets containing duplicate composite keys"
// @Success 200 {object} compare.Report "Difference Report"
// @Failure 400 {object} map[string]string "Invalid Upload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /comparison [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	leftFile, err := c.FormFile("left")
	if err != nil {
		return badRequest(c, "missing form file: left")
	}
	rightFile, err := c.FormFile("right")
	if err != nil {
		return badRequest(c, "missing form file: right")
	}

	left, err := openUpload(leftFile)
	if err != nil {
		l.Warn("Rejected left workbook", zap.Error(err))
		return badRequest(c, err.Error())
	}
	defer left.Close()

	right, err := openUpload(rightFile)
	if err != nil {
		l.Warn("Rejected right workbook", zap.Error(err))
		return badRequest(c, err.Error())
	}
	defer right.Close()

	opts := compare.Options{
		Identifiers: h.cfg.IdentifierList(),
		Strict:      h.cfg.Strict || c.FormValue("strict") == "true",
	}
	if override := c.FormValue("identifiers"); override != "" {
		opts.Identifiers = compare.Config{Identifiers: override}.IdentifierList()
	}

	l.Info("Comparing uploaded workbooks",
		zap.String("left", leftFile.Filename),
		zap.String("right", rightFile.Filename),
		zap.Strings("identifiers", opts.Identifiers),
	)

	report, err := h.service.Compare(c.Context(), left, right, opts)
	if err != nil {
		if errors.Is(err, ErrNoCommonSheets) {
			return badRequest(c, err.Error())
		}
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleIdentifiers returns the configured default identifier fields.
// @Summary Default Identifier Fields
// @Description Returns the ordered identifier-field list used to build composite keys when no override is supplied.
// @Tags comparison
// @Produce json
// @Success 200 {object} map[string][]string "Identifier Fields"
// @Router /comparison/identifiers [get]
func (h *Handler) HandleIdentifiers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"identifiers": h.cfg.IdentifierList()})
}

func openUpload(fh *multipart.FileHeader) (*workbook.ExcelSource, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return workbook.OpenReader(f, strings.TrimSpace(fh.Filename))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

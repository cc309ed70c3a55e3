package report

import (
	"bytes"
	"errors"

	"content-validator/core/logger"
	"content-validator/core/remote"
	"content-validator/core/render"
	"content-validator/core/storage"
	"content-validator/core/utils"
	"content-validator/core/validation"
	"content-validator/feature/content"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for validation reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/report/:validator", h.HandleReport)
	app.Get("/reports", h.HandleList)
	app.Get("/reports/*", h.HandleFetch)
}

// HandleReport runs a validation and returns its report.
// @Summary Run Validation
// @Description Validates post, taxonomy, user or all content against the destination site and returns the report. Mismatches are part of the report, not errors.
// @Tags report
// @Produce json
// @Param validator path string true "Validator (post, taxonomy, user, all)"
// @Param format query string false "Output format (json, yaml, markdown, tree)"
// @Param archive query boolean false "Archive the report to object storage"
// @Param fresh query boolean false "Ignore a cached report"
// @Success 200 {object} Document "Report"
// @Failure 400 {object} map[string]string "Unknown validator or format"
// @Failure 502 {object} map[string]string "Destination unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /report/{validator} [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("validator")

	format := render.FormatJSON
	if raw := c.Query("format"); raw != "" {
		f, err := render.ParseFormat(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		format = f
	}

	doc, err := h.service.Run(c.UserContext(), name, utils.ToBool(c.Query("fresh")))
	if err != nil {
		l.Error("Validation failed", zap.String("validator", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if utils.ToBool(c.Query("archive")) {
		key, err := h.service.Archive(c.UserContext(), doc)
		if err != nil {
			l.Error("Failed to archive report", zap.Error(err))
			return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
		}
		l.Info("Report archived", zap.String("key", key))
		c.Set("X-Report-Key", key)
	}

	if format == render.FormatJSON {
		return c.JSON(doc)
	}
	var buf bytes.Buffer
	if err := render.Write(&buf, format, doc.Reports()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(buf.Bytes())
}

// HandleList lists archived reports.
// @Summary List Reports
// @Description Lists reports archived in object storage, newest first.
// @Tags report
// @Produce json
// @Success 200 {array} Archived "Archived reports"
// @Failure 503 {object} map[string]string "Archiving not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list reports", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

// HandleFetch returns one archived report.
// @Summary Fetch Report
// @Description Downloads an archived report by its key.
// @Tags report
// @Produce json
// @Param key path string true "Report key (e.g. reports/all-1700000000.json)"
// @Success 200 {object} Document "Report"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 503 {object} map[string]string "Archiving not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/{key} [get]
func (h *Handler) HandleFetch(c *fiber.Ctx) error {
	key := c.Params("*")
	doc, err := h.service.Fetch(c.UserContext(), key)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to fetch report", zap.String("key", key), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrObjectNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, content.ErrUnknownKind):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrArchiveDisabled):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, remote.ErrRemoteUnavailable), errors.Is(err, remote.ErrRemoteDecode):
		return fiber.StatusBadGateway
	case errors.Is(err, validation.ErrMalformedRecord):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

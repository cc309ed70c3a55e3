package content

import (
	"errors"
	"strings"

	"content-validator/core/logger"
	"content-validator/core/remote"
	"content-validator/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves local content to a validating site.
type Handler struct {
	source Source
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(source Source, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{source: source, logger: logger}
}

// RegisterRoutes registers the validation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/validation/:kind")
	group.Get("/count", h.HandleCount)
	group.Get("/sample", h.HandleSample)
}

// HandleCount returns the aggregate counts of a content kind.
// @Summary Content Counts
// @Description Returns grouping → sub-key → count for post, taxonomy or user content.
// @Tags validation
// @Produce json
// @Param kind path string true "Content kind (post, taxonomy, user)"
// @Success 200 {object} map[string]map[string]int "Counts"
// @Failure 400 {object} map[string]string "Unknown kind"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wp-json/press-sync/v1/validation/{kind}/count [get]
func (h *Handler) HandleCount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	kind, err := ParseKind(c.Params("kind"))
	if err != nil {
		return badRequest(c, err)
	}

	counts, err := h.source.Counts(c.UserContext(), kind)
	if err != nil {
		l.Error("Count lookup failed", zap.String("kind", string(kind)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(counts)
}

// HandleSample returns the requested records, or post relations for
// type=terms on the post kind.
// @Summary Content Sample
// @Description Returns the records with the given identifiers. On the post kind, type=terms returns taxonomy relations instead.
// @Tags validation
// @Produce json
// @Param kind path string true "Content kind (post, taxonomy, user)"
// @Param type query string true "Sample type (posts, terms, users)"
// @Param ids[] query []string true "Identifiers" collectionFormat(multi)
// @Success 200 {array} map[string]interface{} "Records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wp-json/press-sync/v1/validation/{kind}/sample [get]
func (h *Handler) HandleSample(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	kind, err := ParseKind(c.Params("kind"))
	if err != nil {
		return badRequest(c, err)
	}
	sampleType, err := remote.ParseSampleType(c.Query("type"))
	if err != nil {
		return badRequest(c, err)
	}
	ids := queryIDs(c)

	l.Debug("Serving sample",
		zap.String("kind", string(kind)),
		zap.String("type", string(sampleType)),
		zap.Int("ids", len(ids)),
	)

	var payload any
	switch {
	case kind == KindPost && sampleType == remote.TypeTerms:
		payload, err = h.source.Relations(c.UserContext(), ids)
	case expectedType(kind) == sampleType:
		payload, err = h.source.ByIDs(c.UserContext(), kind, ids)
	default:
		return badRequest(c, errors.New("type "+string(sampleType)+" is not served for "+string(kind)))
	}
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			return badRequest(c, err)
		}
		l.Error("Sample lookup failed", zap.String("kind", string(kind)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(payload)
}

// expectedType is the record type served for each kind.
func expectedType(kind Kind) remote.SampleType {
	switch kind {
	case KindTaxonomy:
		return remote.TypeTerms
	case KindUser:
		return remote.TypeUsers
	default:
		return remote.TypePosts
	}
}

// queryIDs collects ids[]=1&ids[]=2 and the comma form ids=1,2.
func queryIDs(c *fiber.Ctx) []string {
	var ids []string
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if k != "ids[]" && k != "ids" && !strings.HasPrefix(k, "ids[") {
			return
		}
		ids = append(ids, utils.SplitList(string(value))...)
	})
	return ids
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

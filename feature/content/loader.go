package content

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BasePath is where the destination API is mounted.
const BasePath = "/wp-json/press-sync/v1"

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the content feature. A nil source disables it.
func NewFeature(source Source, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(source, logger), enabled: source != nil}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "content"
}

// IsEnabled reports whether a content source is available.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app.Group(BasePath))
	return nil
}

package maintenance

import (
	"forum-provider/core/data"
	"forum-provider/core/provider"
	"forum-provider/core/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the maintenance feature for p.
func NewFeature(p provider.Provider, reg *registry.Registry[data.Access], logger *zap.Logger) *Feature {
	svc := NewService(p, reg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "maintenance"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

package maintenance

import (
	"errors"
	"strings"

	"forum-provider/core/functions"
	"forum-provider/core/logger"
	"forum-provider/core/provider"
	"forum-provider/core/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the provider maintenance API.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the maintenance routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/provider")
	group.Get("/", h.HandleInfo)
	group.Get("/installed", h.HandleInstalled)
	group.Get("/schema", h.HandleSchema)
	group.Get("/scripts/:kind", h.HandleScripts)
	group.Post("/connection-string", h.HandleConnectionString)
	group.Post("/functions/:operation", h.HandleFunction)
}

// HandleInfo describes the selected provider.
// @Summary Provider Info
// @Description Returns the provider name, gorm dialect, table qualifier and connection-string parameters.
// @Tags provider
// @Produce json
// @Success 200 {object} ProviderInfo
// @Router /provider [get]
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	return c.JSON(h.service.Info())
}

// HandleInstalled reports whether the forum schema is installed.
// @Summary Schema Installed
// @Description Checks the connected database for the qualified Registry table.
// @Tags provider
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 503 {object} map[string]string "No database connection"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /provider/installed [get]
func (h *Handler) HandleInstalled(c *fiber.Ctx) error {
	installed, err := h.service.Installed()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"installed": installed})
}

// HandleSchema checks the core forum tables.
// @Summary Schema Check
// @Description Compares the core forum tables (qualified by the configured prefix) with the expected columns and types.
// @Tags provider
// @Produce json
// @Success 200 {object} schema.Report
// @Failure 503 {object} map[string]string "No database connection"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /provider/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	report, err := h.service.Schema()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleScripts lists the scripts of one kind.
// @Summary Script List
// @Description Returns the ordered script paths for install, upgrade, azure, providers or fulltext.
// @Tags provider
// @Produce json
// @Param kind path string true "Script kind"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Unknown kind"
// @Router /provider/scripts/{kind} [get]
func (h *Handler) HandleScripts(c *fiber.Ctx) error {
	list, err := h.service.Scripts(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if list == nil {
		list = []string{}
	}
	return c.JSON(fiber.Map{"kind": strings.ToLower(c.Params("kind")), "scripts": list})
}

// HandleConnectionString builds a native connection string.
// @Summary Build Connection String
// @Description Assembles the engine's connection string from name/value pairs.
// @Tags provider
// @Accept json
// @Produce json
// @Param params body []provider.Param true "Connection parameters"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Router /provider/connection-string [post]
func (h *Handler) HandleConnectionString(c *fiber.Ctx) error {
	var params []provider.Param
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body: " + err.Error()})
	}

	dsn, err := h.service.ConnectionString(params)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"connection_string": dsn})
}

// HandleFunction runs an engine-specific function.
// @Summary Run Function
// @Description Runs a provider-specific function (DBSize, ReIndex, RunSQL, FullTextSupported) in its own transaction.
// @Tags provider
// @Accept json
// @Produce json
// @Param operation path string true "Operation name"
// @Param type query string false "Function type (scalar, query, datatable, reader)"
// @Param params body map[string]interface{} false "Operation parameters"
// @Success 200 {object} FunctionResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 501 {object} map[string]string "Not Implemented"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /provider/functions/{operation} [post]
func (h *Handler) HandleFunction(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fnType, err := functions.ParseFunctionType(c.Query("type", functions.Scalar.String()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	params := functions.Params{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&params); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body: " + err.Error()})
		}
	}

	operation := c.Params("operation")
	l.Info("Running provider function", zap.String("operation", operation), zap.Stringer("type", fnType))

	res, err := h.service.Execute(c.UserContext(), fnType, operation, params)
	if err != nil {
		l.Error("Provider function failed", zap.String("operation", operation), zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNoFunctions):
		status = fiber.StatusNotImplemented
	case errors.Is(err, registry.ErrNotRegistered):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

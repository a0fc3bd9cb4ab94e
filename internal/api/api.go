package api

import (
	"errors"

	"github.com/Aquilabot/KreaPC-Builder/internal/builder"
	"github.com/Aquilabot/KreaPC-Builder/internal/catalog"
	"github.com/Aquilabot/KreaPC-Builder/pkg/pcpartpicker_automation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

const (
	errorInvalidPayload = "Invalid request payload"
	errorUnknownEvent   = "Unknown event kind"
	errorExporting      = "Error exporting build"
)

type BuildRequest struct {
	Build builder.Build `json:"build"`
}

type EventRequest struct {
	Build builder.Build `json:"build"`
	Event builder.Event `json:"event"`
}

type ExportRequest struct {
	Build  builder.Build `json:"build"`
	Region string        `json:"region"`
}

// Server serves the configurator over HTTP. It keeps no build state: every
// request carries the build it operates on.
type Server struct {
	catalog  *catalog.Catalog
	exporter pcpartpicker_automation.Exporter
	region   string
}

func NewServer(cat *catalog.Catalog, exporter pcpartpicker_automation.Exporter, region string) *Server {
	return &Server{
		catalog:  cat,
		exporter: exporter,
		region:   region,
	}
}

// App creates the Fiber app with every route registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(helmet.New())
	app.Use(logger.New(logger.Config{
		Format: "${pid} | ${time} | ${latency} | [${ip}]:${port} | ${status} - ${method} ${path}\n",
	}))

	app.Get("/catalog", s.getCatalog)
	app.Get("/catalog/cpus", s.getSelectableCPUs)
	app.Post("/build", s.postBuild)
	app.Post("/build/events", s.postEvent)
	app.Post("/build/summary", s.postSummary)
	app.Post("/build/export", s.postExport)

	return app
}

func (s *Server) getCatalog(c *fiber.Ctx) error {
	return c.JSON(s.catalog.Data())
}

func (s *Server) getSelectableCPUs(c *fiber.Ctx) error {
	return c.JSON(s.catalog.SelectableCPUs())
}

func (s *Server) postBuild(c *fiber.Ctx) error {
	var req BuildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errorInvalidPayload})
	}

	return c.JSON(builder.Derive(s.catalog, req.Build))
}

func (s *Server) postEvent(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errorInvalidPayload})
	}
	if !req.Event.Kind.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errorUnknownEvent})
	}

	next := builder.Apply(s.catalog, req.Build, req.Event)
	return c.JSON(builder.Derive(s.catalog, next))
}

func (s *Server) postSummary(c *fiber.Ctx) error {
	var req BuildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errorInvalidPayload})
	}

	return c.SendString(builder.Summary(builder.Derive(s.catalog, req.Build)))
}

func (s *Server) postExport(c *fiber.Ctx) error {
	var req ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errorInvalidPayload})
	}
	if req.Region == "" {
		req.Region = s.region
	}

	view := builder.Derive(s.catalog, req.Build)
	export, err := s.exporter.Export(req.Region, view.PCPPLinks())
	if err != nil {
		if errors.Is(err, pcpartpicker_automation.ErrNoProductLinks) || errors.Is(err, pcpartpicker_automation.ErrInvalidRegion) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		log.Warnf("Export failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": errorExporting})
	}

	return c.JSON(export)
}

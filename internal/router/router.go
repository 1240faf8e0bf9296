package router

import (
	"cafeteria-admin/internal/handler"
	"cafeteria-admin/internal/middleware"
	"cafeteria-admin/internal/repository"
	"cafeteria-admin/internal/service"
	"cafeteria-admin/internal/ws"
	"cafeteria-admin/pkg/metrics"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options tune the application built by New.
type Options struct {
	// Hub enables the /ws live feed when non-nil.
	Hub *ws.Hub
	// DatabaseURLSet is reported by the diagnostics endpoint.
	DatabaseURLSet bool
}

// New wires services and handlers on top of store and returns the fiber
// application.
func New(store *repository.Store, opts Options) *fiber.App {
	var events service.Broadcaster
	if opts.Hub != nil {
		events = opts.Hub
	}

	menuService := service.NewMenuService(store.Menu, events)
	orderService := service.NewOrderService(store.Menu, store.Orders, events)
	invService := service.NewInventoryService(store.Inventory, events)
	staffService := service.NewStaffService(store.Staff, service.NewPINAuthenticator(store.Staff))
	diagService := service.NewDiagnosticsService(store.Diagnostics, opts.DatabaseURLSet)

	menuHandler := handler.NewMenuHandler(menuService)
	orderHandler := handler.NewOrderHandler(orderService)
	invHandler := handler.NewInventoryHandler(invService)
	authHandler := handler.NewAuthHandler(staffService)
	healthHandler := handler.NewHealthHandler(diagService)

	app := fiber.New(fiber.Config{
		AppName:      "Cafeteria Management API",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(middleware.RequestIDs())
	app.Use(middleware.Logger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD",
	}))
	app.Use(metrics.Middleware())

	app.Get("/", healthHandler.Root)
	app.Get("/test", healthHandler.Diagnostics)
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	api.Get("/menu", menuHandler.GetMenu)
	api.Get("/menu/:id", menuHandler.GetMenuItem)
	api.Post("/menu", menuHandler.CreateMenuItem)

	api.Get("/orders", orderHandler.GetOrders)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Post("/orders", orderHandler.CreateOrder)

	api.Get("/inventory", invHandler.GetInventory)
	api.Post("/inventory", invHandler.UpsertInventory)

	api.Post("/staff", authHandler.CreateStaff)
	api.Post("/auth/login", authHandler.Login)

	if opts.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws", websocket.New(opts.Hub.Serve))
	}

	return app
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pos-dashboard/internal/config"
	"go-pos-dashboard/internal/gateway"
	"go-pos-dashboard/internal/handler"
	"go-pos-dashboard/internal/middleware"
	"go-pos-dashboard/internal/service"
	"go-pos-dashboard/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 3. Backend gateways
	client := gateway.NewClient(cfg.APIBaseURL)
	invGateway := gateway.NewInventoryGateway(client)
	txGateway := gateway.NewTransactionGateway(client)
	transferGateway := gateway.NewTransferGateway(client)
	authGateway := gateway.NewAuthGateway(client)

	// 4. Dependency Injection (Wiring Layers)
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	screenTTL := time.Duration(cfg.ScreenTTLMinutes) * time.Minute

	salesService := service.NewSalesService(invGateway, txGateway, wsHub, screenTTL)
	stockService := service.NewStockService(invGateway, transferGateway, wsHub)
	reportService := service.NewReportService(txGateway, transferGateway)
	authService := service.NewAuthService(authGateway, sessionTTL)

	authHandler := handler.NewAuthHandler(authService, sessionTTL)
	salesHandler := handler.NewSalesHandler(salesService)
	stockHandler := handler.NewStockHandler(stockService)
	reportHandler := handler.NewReportHandler(reportService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Dashboard v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	if cfg.AllowedOrigin != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigin,
			AllowCredentials: true,
		}))
	} else {
		app.Use(cors.New())
	}

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireSession())

	// Inventory
	protected.Get("/inventory/:location", stockHandler.Inventory)

	// Sales screens
	protected.Post("/sales/screens", salesHandler.OpenScreen)
	protected.Get("/sales/screens/:id", salesHandler.GetScreen)
	protected.Post("/sales/screens/:id/rows", salesHandler.AddRow)
	protected.Delete("/sales/screens/:id/rows/:index", salesHandler.RemoveRow)
	protected.Put("/sales/screens/:id/rows/:index", salesHandler.SetField)
	protected.Put("/sales/screens/:id/rows/:index/item", salesHandler.SelectItem)
	protected.Get("/sales/screens/:id/items", salesHandler.LookupItems)
	protected.Put("/sales/screens/:id/discount", salesHandler.SetDiscount)
	protected.Post("/sales/screens/:id/payment", salesHandler.ProceedToPayment)
	protected.Post("/sales/screens/:id/down-payment", salesHandler.SetDownPayment)
	protected.Get("/sales/screens/:id/summary", salesHandler.Summary)
	protected.Post("/sales/screens/:id/submit", salesHandler.Submit)
	protected.Post("/sales/screens/:id/back", salesHandler.BackToEditing)

	// Stock movement
	protected.Post("/transfers", stockHandler.Transfer)
	protected.Post("/transfers/bulk", stockHandler.BulkTransfer)
	protected.Post("/receipts", stockHandler.Receive)
	protected.Post("/receipts/bulk", stockHandler.BulkReceive)
	protected.Post("/returns", stockHandler.Return)
	protected.Post("/returns/rusak", stockHandler.ReturnDamaged)

	// Transactions
	protected.Get("/transactions", salesHandler.ListTransactions)

	// Reports
	protected.Get("/reports/sales/monthly", reportHandler.MonthlySales)
	protected.Get("/reports/sales/daily", reportHandler.DailySales)
	protected.Get("/reports/sales/discounted", reportHandler.DiscountedSales)
	protected.Get("/reports/transfers/monthly", reportHandler.MonthlyTransfers)
	protected.Get("/reports/transfers/daily", reportHandler.DailyTransfers)

	// ============ ADMIN ROUTES ============
	admin := api.Group("", middleware.RequireSession(), middleware.RequireRole("admin"))
	admin.Put("/items/price", stockHandler.CorrectPrice)
	admin.Put("/items/:item_id", stockHandler.CorrectItem)
	admin.Put("/items", stockHandler.BulkCorrect)
	admin.Put("/transactions/:id/payment-status", salesHandler.UpdatePaymentStatus)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(cfg.Address()); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-baki-pos/internal/config"
	"go-baki-pos/internal/handler"
	"go-baki-pos/internal/middleware"
	"go-baki-pos/internal/repository"
	"go-baki-pos/internal/service"
	"go-baki-pos/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const defaultPIN = "1234"

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Seed the in-memory store; state resets on every restart
	store := repository.NewSeededStore(time.Now())
	log.Println("✅ Store seeded with demo products, customers and transactions")

	// 3. Operator PIN
	pinHash := cfg.OperatorPINHash
	if pinHash == "" && !cfg.AuthDisabled {
		hashed, err := service.HashPIN(defaultPIN, bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash default PIN: %v", err)
		}
		pinHash = hashed
		log.Printf("Warning: OPERATOR_PIN_HASH not set, operator PIN defaults to %s", defaultPIN)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	ledgerService := service.NewLedgerService(store, wsHub)
	invService := service.NewInventoryService(store, store, store, cfg.LowStockThreshold, cfg.CriticalStockThreshold)
	dashService := service.NewDashboardService(store, store, store, cfg.LowStockThreshold, time.Now)
	authService := service.NewAuthService(pinHash, cfg.OperatorName)

	cmdHandler := handler.NewCommandHandler(ledgerService)
	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("")
	if cfg.AuthDisabled {
		log.Println("Warning: AUTH_DISABLED=true, API is open")
	} else {
		protected.Use(middleware.RequireAuth(authService))
	}

	// Commands (typed or spoken)
	protected.Post("/commands", cmdHandler.ProcessCommand)
	protected.Get("/commands/recent", cmdHandler.GetRecentCommands)

	// Records
	protected.Get("/products", invHandler.GetProducts)
	protected.Get("/products/:id", invHandler.GetProduct)
	protected.Get("/customers", invHandler.GetCustomers)
	protected.Get("/customers/:id", invHandler.GetCustomer)
	protected.Get("/transactions", invHandler.GetTransactions)
	protected.Get("/transactions/:id", invHandler.GetTransaction)

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	// WebSocket Routes (token in ?token= on the handshake)
	wsRoutes := app.Group("/ws", handler.RequireUpgrade)
	if !cfg.AuthDisabled {
		wsRoutes.Use(middleware.RequireAuth(authService))
	}
	wsRoutes.Get("", handler.Subscribe(wsHub))
	wsRoutes.Get("/voice", handler.Voice(ledgerService))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

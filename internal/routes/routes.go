// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and role requirements.
package routes

import (
	"ecoshop/internal/handlers"
	"ecoshop/internal/middleware"
	"ecoshop/internal/models"
	"ecoshop/internal/repositories"
	"ecoshop/internal/services/auth"
	"ecoshop/internal/services/checkout"
	"ecoshop/internal/services/ledger"
	"ecoshop/internal/services/payout"
	"ecoshop/internal/services/vault"
	"ecoshop/internal/services/verification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by role and applies the auth middleware where needed.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	ledgerRepo := repositories.NewLedgerRepository(db)
	productRepo := repositories.NewProductRepository(db)
	businessRepo := repositories.NewBusinessProductRepository(db)
	sponsorRepo := repositories.NewSponsorRepository(db)
	cardRepo := repositories.NewPayoutCardRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	ledgerService := ledger.NewService(ledgerRepo, repositories.CacheService, nil)
	vaultService := vault.NewService(ledgerService)
	checkoutService := checkout.NewService(productRepo, ledgerService)
	verificationService := verification.NewService(businessRepo, sponsorRepo, ledgerRepo)
	payoutService := payout.NewService(cardRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(productRepo)
	walletHandler := handlers.NewWalletHandler(ledgerService, payoutService)
	vaultHandler := handlers.NewVaultHandler(vaultService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	recyclingHandler := handlers.NewRecyclingHandler(ledgerService)
	businessHandler := handlers.NewBusinessHandler(verificationService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	sponsorHandler := handlers.NewSponsorHandler(verificationService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to EcoShop API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Get("/health", handlers.HealthCheck)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Get("/profile", authHandler.Profile)

	setupWalletRoutes(protected, walletHandler, vaultHandler)
	setupShopRoutes(protected, checkoutHandler)
	setupShipperRoutes(protected, recyclingHandler)
	setupBusinessRoutes(protected, businessHandler)
	setupVerifierRoutes(protected, verificationHandler)
	setupAdminRoutes(protected, sponsorHandler)
}

func setupWalletRoutes(router fiber.Router, walletHandler *handlers.WalletHandler, vaultHandler *handlers.VaultHandler) {
	wallet := router.Group("/wallet")
	wallet.Get("/", walletHandler.GetWallet)
	wallet.Get("/history", walletHandler.GetHistory)
	wallet.Post("/swap", walletHandler.Swap)
	wallet.Post("/withdraw", walletHandler.Withdraw)
	wallet.Post("/cards", walletHandler.AddPayoutCard)
	wallet.Get("/cards", walletHandler.ListPayoutCards)

	vault := router.Group("/vault")
	vault.Get("/packages", vaultHandler.Packages)
	vault.Post("/stake", vaultHandler.Stake)
	vault.Post("/reinvest", vaultHandler.Reinvest)
	vault.Get("/:id/lock", vaultHandler.LockDetails)
	vault.Post("/:id/unstake", vaultHandler.Unstake)
}

func setupShopRoutes(router fiber.Router, checkoutHandler *handlers.CheckoutHandler) {
	router.Post("/checkout", checkoutHandler.Checkout)
}

func setupShipperRoutes(router fiber.Router, recyclingHandler *handlers.RecyclingHandler) {
	recycling := router.Group("/recycling", middleware.RequireRole(models.RoleShipper))
	recycling.Post("/collect", recyclingHandler.Collect)
	recycling.Post("/process", recyclingHandler.ProcessBatch)
}

func setupBusinessRoutes(router fiber.Router, businessHandler *handlers.BusinessHandler) {
	business := router.Group("/business", middleware.RequireRole(models.RoleBusiness))
	business.Post("/products", businessHandler.CreateProduct)
	business.Get("/products", businessHandler.ListProducts)
	business.Post("/products/:id/sale", businessHandler.RecordSale)
	business.Get("/stats", businessHandler.Stats)
}

func setupVerifierRoutes(router fiber.Router, verificationHandler *handlers.VerificationHandler) {
	verifier := router.Group("/verification", middleware.RequireRole(models.RoleVerifier))
	verifier.Get("/pending", verificationHandler.ListPending)
	verifier.Post("/:id/verdict", verificationHandler.Verdict)
}

func setupAdminRoutes(router fiber.Router, sponsorHandler *handlers.SponsorHandler) {
	admin := router.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.Get("/sponsors", sponsorHandler.List)
	admin.Post("/sponsors/:id/fund", sponsorHandler.Fund)
	admin.Post("/sponsors/disburse", sponsorHandler.Disburse)
}

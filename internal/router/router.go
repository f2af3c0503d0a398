package router

import (
	"github.com/asa131211/sanchez-park/internal/config"
	"github.com/asa131211/sanchez-park/internal/handler"
	"github.com/asa131211/sanchez-park/internal/middleware"
	"github.com/asa131211/sanchez-park/internal/repository"
	"github.com/asa131211/sanchez-park/internal/service"
	"github.com/asa131211/sanchez-park/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter())

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	cashBoxRepo := repository.NewCashBoxRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	shortcutRepo := repository.NewShortcutRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	carts := service.NewCartStore()

	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, rdb)
	cartSvc := service.NewCartService(carts, productRepo)
	cashBoxSvc := service.NewCashBoxService(cashBoxRepo)
	saleSvc := service.NewSaleService(saleRepo, userRepo, productRepo, cashBoxSvc, carts, dispatcher)
	reportSvc := service.NewReportService(saleRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	shortcutSvc := service.NewShortcutService(shortcutRepo, productRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	cartH := handler.NewCartHandler(cartSvc)
	salesH := handler.NewSalesHandler(saleSvc, cfg.PDFStoragePath)
	cashBoxH := handler.NewCashBoxHandler(cashBoxSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	usersH := handler.NewUsersHandler(authSvc)
	shortcutsH := handler.NewShortcutsHandler(shortcutSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	priceH := handler.NewPriceHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required
	r.GET("/v1/price/:id", priceH.GetPrice)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole("admin", "seller")
	adminOnly := middleware.RequireRole("admin")

	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog — sellers read, admin writes
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		prods := v1.Group("/products", adminOnly)
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Deactivate)
			prods.PATCH("/:id/reactivate", productsH.Reactivate)
		}

		cart := v1.Group("/cart", anyRole)
		{
			cart.GET("", cartH.View)
			cart.DELETE("", cartH.Clear)
			cart.POST("/items", cartH.Add)
			cart.PUT("/items", cartH.UpdateQuantity)
			cart.DELETE("/items/:id", cartH.Remove)
		}

		sales := v1.Group("/sales", anyRole)
		{
			sales.POST("/checkout", salesH.Checkout)
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.Get)
			sales.GET("/:id/receipt", salesH.DownloadReceipt)
		}

		cashbox := v1.Group("/cashbox", anyRole)
		{
			cashbox.POST("/open", cashBoxH.Open)
			cashbox.POST("/:id/close", cashBoxH.Close)
			cashbox.GET("/active", cashBoxH.Active)
			cashbox.GET("/history", adminOnly, cashBoxH.History)
		}

		reports := v1.Group("/reports", adminOnly)
		{
			reports.GET("/sales", reportsH.Summary)
			reports.GET("/sales/export", reportsH.ExportCSV)
		}

		users := v1.Group("/users", adminOnly)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}

		// Each seller manages their own shortcut map
		shortcuts := v1.Group("/users/me/shortcuts", anyRole)
		{
			shortcuts.GET("", shortcutsH.List)
			shortcuts.PUT("", shortcutsH.Replace)
			shortcuts.DELETE("/:key", shortcutsH.Delete)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", anyRole, settingsH.Get)
			settings.PUT("", adminOnly, settingsH.Update)
			settings.POST("/sync", anyRole, settingsH.TouchSync)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

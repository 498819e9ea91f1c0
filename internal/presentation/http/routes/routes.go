package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/snacksbunk-pos/internal/config"
	"github.com/sangkips/snacksbunk-pos/internal/domain/enum"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/handler"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/middleware"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Menu         *handler.MenuHandler
	Settings     *handler.SettingsHandler
	Bill         *handler.BillHandler
	CashRegister *handler.CashRegisterHandler
	Printer      *handler.PrinterHandler
	Payment      *handler.PaymentHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Authenticator   middleware.Authenticator
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	LoginLimiter    *middleware.IPRateLimiter
	Reporter        diagnostics.Reporter
}

var (
	adminOnly = middleware.RequireRole(enum.RoleAdmin)
	anyRole   = middleware.RequireRole(enum.RoleAdmin, enum.RoleCashier)
)

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorReporter(deps.Reporter))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		body := gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
			"time":    time.Now().UTC().Format(time.RFC3339),
		}
		if deps.LoginLimiter != nil {
			body["login_rate_limiter"] = deps.LoginLimiter.Stats()
		}
		c.JSON(http.StatusOK, body)
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h, deps)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Authenticator))
		protected.Use(anyRole)

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := v1.Group("/auth")
	{
		if deps.LoginLimiter != nil {
			auth.POST("/login", deps.LoginLimiter.Middleware(), h.Auth.Login)
		} else {
			auth.POST("/login", h.Auth.Login)
		}
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/auth/me", h.Auth.Me)

	registerMenuRoutes(protected, h)
	registerSettingsRoutes(protected, h)

	protected.POST("/cart/preview", h.Bill.PreviewCart)

	registerBillRoutes(protected, h, deps)
	registerCashRegisterRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu-items")
	{
		menu.GET("", h.Menu.List)
		menu.GET("/:id", h.Menu.Get)
		menu.POST("", adminOnly, h.Menu.Create)
		menu.PUT("/:id", adminOnly, h.Menu.Update)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", adminOnly, h.Settings.UpdateSettings)
		settings.POST("/gst/toggle", adminOnly, h.Settings.ToggleGST)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := protected.Group("/bills")
	{
		// Bill creation honours Idempotency-Key so a double submit stores one bill
		bills.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Bill.Create)
		bills.GET("", h.Bill.List)
		bills.GET("/export", adminOnly, h.Bill.Export)
		bills.GET("/:id", h.Bill.Get)
		bills.PATCH("/:id", adminOnly, h.Bill.Patch)
		bills.GET("/:id/print", h.Bill.PrintHTML)
		bills.GET("/:id/pdf", h.Bill.PDF)
		bills.POST("/:id/receipt", h.Printer.PrintReceipt)
		bills.GET("/:id/upi-qr", h.Payment.UPIQRCode)
	}
}

func registerCashRegisterRoutes(protected *gin.RouterGroup, h *Handlers) {
	register := protected.Group("/cash-register")
	register.Use(adminOnly)
	{
		register.GET("", h.CashRegister.Get)
		register.GET("/export", h.CashRegister.Export)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", adminOnly, h.Printer.TestPrint)
	}
}

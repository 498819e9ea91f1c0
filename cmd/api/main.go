package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/snacksbunk-pos/internal/application/service"
	"github.com/sangkips/snacksbunk-pos/internal/config"
	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/internal/infrastructure/messaging"
	"github.com/sangkips/snacksbunk-pos/internal/infrastructure/repository"
	"github.com/sangkips/snacksbunk-pos/internal/infrastructure/storage"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/handler"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/middleware"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/routes"
	"github.com/sangkips/snacksbunk-pos/pkg/currency"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
	"github.com/sangkips/snacksbunk-pos/pkg/objectstore"
	"github.com/sangkips/snacksbunk-pos/pkg/pdf"
	"github.com/sangkips/snacksbunk-pos/pkg/printer"
	"github.com/sangkips/snacksbunk-pos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter := diagnostics.NewLogReporter()

	// Open the blob store
	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Warning: failed to close storage: %v", err)
		}
	}()

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(store, reporter)
	billRepo := repository.NewBillRepository(store, reporter)
	settingsRepo := repository.NewSettingsRepository(store, reporter)
	idempotencyRepo, closeIdempotency := newIdempotencyRepository(cfg)
	defer closeIdempotency()

	// Currency formatting with the fixed-symbol fallback
	formatter, err := currency.NewLocaleFormatter(cfg.Currency.Locale, cfg.Currency.Code)
	if err != nil {
		log.Printf("Warning: %v, amounts will use the %s fallback", err, cfg.Currency.FallbackSymbol)
	}
	var primary currency.Formatter
	if formatter != nil {
		primary = formatter
	}
	money := currency.NewMoney(primary, cfg.Currency.FallbackSymbol, reporter)
	loc := cfg.Shop.Location()

	// Bill events
	var events service.BillEventPublisher = service.NewNoopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := messaging.NewKafkaBillPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		events = publisher
	}

	// Export archive
	archiver := objectstore.NewNullArchiver()
	if cfg.Export.Bucket != "" {
		s3Archiver, err := objectstore.NewS3Archiver(ctx, objectstore.Config{
			Bucket:          cfg.Export.Bucket,
			Region:          cfg.Export.Region,
			Endpoint:        cfg.Export.Endpoint,
			AccessKeyID:     cfg.Export.AccessKeyID,
			SecretAccessKey: cfg.Export.SecretAccessKey,
			Prefix:          cfg.Export.Prefix,
		})
		if err != nil {
			log.Printf("Warning: export archive disabled: %v", err)
		} else {
			log.Printf("[exports] archiving to bucket %s", cfg.Export.Bucket)
			archiver = s3Archiver
		}
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	defer thermalPrinter.Close()

	// Initialize services
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	authService, err := service.NewAuthService(cfg.Auth, jwtManager)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}
	menuService := service.NewMenuService(menuRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	billingService := service.NewBillingService(billRepo, settingsRepo, events, reporter)
	reportService := service.NewReportService(billRepo, money, loc, archiver, reporter)
	documentService := service.NewDocumentService(cfg.Shop.Name, money, loc,
		pdf.NewChromeRenderer(cfg.Chrome.Path, cfg.Chrome.Timeout, pdf.A5))
	printerService := service.NewPrinterService(thermalPrinter, billRepo, settingsRepo, entity.ReceiptHeader{
		ShopName: cfg.Shop.Name,
		Address:  cfg.Shop.Address,
		Phone:    cfg.Shop.Phone,
		GSTIN:    cfg.Shop.GSTIN,
	}, loc, cfg.Printer.Type)
	paymentService := service.NewPaymentService(billRepo, cfg.UPI.VPA, cfg.UPI.PayeeName)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Menu:         handler.NewMenuHandler(menuService),
		Settings:     handler.NewSettingsHandler(settingsService),
		Bill:         handler.NewBillHandler(billingService, menuService, settingsService, reportService, documentService),
		CashRegister: handler.NewCashRegisterHandler(reportService),
		Printer:      handler.NewPrinterHandler(printerService),
		Payment:      handler.NewPaymentHandler(paymentService),
	}

	loginLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		Requests: cfg.RateLimit.Requests,
		Window:   time.Duration(cfg.RateLimit.Duration) * time.Second,
	})
	defer loginLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Authenticator:   authService,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		LoginLimiter:    loginLimiter,
		Reporter:        reporter,
	})

	go purgeExpiredKeys(ctx, idempotencyRepo, time.Hour)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: server shutdown: %v", err)
	}
}

// newIdempotencyRepository keeps keys in redis when redis already backs the
// blob store, so replays survive restarts; otherwise in memory
func newIdempotencyRepository(cfg *config.Config) (domainRepo.IdempotencyRepository, func()) {
	if !strings.EqualFold(cfg.Storage.Driver, "redis") {
		return repository.NewIdempotencyRepository(), func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return repository.NewRedisIdempotencyRepository(client, cfg.Redis.KeyPrefix), func() {
		_ = client.Close()
	}
}

func purgeExpiredKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := repo.DeleteExpired(ctx); err != nil {
				log.Printf("[idempotency] cleanup failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

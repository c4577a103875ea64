package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/domicilia/backoffice-api/internal/application/auth"
	"github.com/domicilia/backoffice-api/internal/application/billing"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
	infraai "github.com/domicilia/backoffice-api/internal/infrastructure/ai"
	"github.com/domicilia/backoffice-api/internal/infrastructure/payment"
	infrapdf "github.com/domicilia/backoffice-api/internal/infrastructure/pdf"
	"github.com/domicilia/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/domicilia/backoffice-api/internal/interfaces/http"
	"github.com/domicilia/backoffice-api/pkg/config"
	"github.com/domicilia/backoffice-api/pkg/logger"
	"github.com/domicilia/backoffice-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	adminRepo := postgres.NewAdminUserRepository(pool)
	basicRepo := postgres.NewBasicUserRepository(pool)
	subRoleRepo := postgres.NewSubRoleRepository(pool)
	tokenRepo := postgres.NewAccessTokenRepository(pool)
	themeRepo := postgres.NewColorThemeRepository(pool)
	offerRepo := postgres.NewVirtualOfficeOfferRepository(pool)
	officeRepo := postgres.NewVirtualOfficeRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	receivedRepo := postgres.NewReceivedFileRepository(pool)
	contractRepo := postgres.NewContractFileRepository(pool)
	supportingRepo := postgres.NewSupportingFileRepository(pool)
	categoryRepo := postgres.NewCategoryFileRepository(pool)
	fileTypeRepo := postgres.NewFileTypeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(auth.NewResolver(adminRepo, basicRepo, companyRepo), tokenRepo)
	registerUC := usecase.NewRegisterUseCase(adminRepo, basicRepo, subRoleRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	companyDataUC := usecase.NewCompanyDataUseCase(companyRepo, offerRepo, fileTypeRepo, categoryRepo)
	themeUC := usecase.NewThemeUseCase(themeRepo, companyRepo, txRunner)
	userUC := usecase.NewUserUseCase(adminRepo, basicRepo)
	virtualOfficeUC := usecase.NewVirtualOfficeUseCase(officeRepo, basicRepo)
	fileUC := usecase.NewFileUseCase(receivedRepo, contractRepo, supportingRepo, categoryRepo, fileTypeRepo)

	stripeSvc := payment.NewStripeService(cfg.Stripe.SecretKey)
	offerUC := usecase.NewOfferUseCase(offerRepo, companyRepo, stripeSvc, log)

	openaiSvc := infraai.NewOpenAIService(cfg.AI.OpenAIAPIKey, cfg.AI.ChatModel)
	chatUC := usecase.NewChatUseCase(openaiSvc)
	analysisUC := usecase.NewAnalysisUseCase(openaiSvc)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, offerRepo, companyRepo)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, offerRepo, companyRepo, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	httpMetrics := metrics.NewHTTPMetrics(cfg.App.Name)
	app.Use(httpMetrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Domicilia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		RegisterUC:      registerUC,
		CompanyUC:       companyUC,
		CompanyDataUC:   companyDataUC,
		ThemeUC:         themeUC,
		OfferUC:         offerUC,
		VirtualOfficeUC: virtualOfficeUC,
		UserUC:          userUC,
		FileUC:          fileUC,
		InvoiceUC:       invoiceUC,
		PDFUC:           pdfUC,
		ChatUC:          chatUC,
		AnalysisUC:      analysisUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

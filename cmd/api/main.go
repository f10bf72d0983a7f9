package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nutrimilho/estoque-api/internal/application/alerts"
	"github.com/nutrimilho/estoque-api/internal/application/analytics"
	"github.com/nutrimilho/estoque-api/internal/application/auth"
	"github.com/nutrimilho/estoque-api/internal/application/inventory"
	"github.com/nutrimilho/estoque-api/internal/application/reports"
	"github.com/nutrimilho/estoque-api/internal/domain/repository"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/memory"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/notify"
	infrapdf "github.com/nutrimilho/estoque-api/internal/infrastructure/pdf"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/postgres"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/xlsx"
	httpRouter "github.com/nutrimilho/estoque-api/internal/interfaces/http"
	"github.com/nutrimilho/estoque-api/pkg/config"
	"github.com/nutrimilho/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistencia: PostgreSQL, o memoria sembrada en modo demo.
	var (
		groupRepo   repository.GroupRepository
		productRepo repository.ProductRepository
		movRepo     repository.MovementRepository
		userRepo    repository.UserRepository
		txRunner    inventory.TxRunner
		listener    *postgres.Listener
	)
	if cfg.App.Env == "demo" {
		store := memory.NewStore()
		store.SeedDemo(time.Now())
		groupRepo = store.Groups()
		productRepo = store.Products()
		movRepo = store.Movements()
		userRepo = store.Users()
		txRunner = store
		log.Info().Msg("modo demo: store en memoria sembrado")
	} else {
		if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		groupRepo = postgres.NewGroupRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
		movRepo = postgres.NewMovementRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
		listener = postgres.NewListener(pool, log)
	}

	// Casos de uso
	catalogUC := inventory.NewCatalogUseCase(txRunner, groupRepo, productRepo, movRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, movRepo)
	dashboardUC := analytics.NewDashboardUseCase(groupRepo, productRepo, movRepo)
	reportUC := reports.NewReportUseCase(
		groupRepo, productRepo, movRepo,
		infrapdf.NewMarotoStockReport(),
		xlsx.NewMovementExporter(),
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Alertas de estoque baixo
	var notifier alerts.Notifier
	if cfg.Telegram.Token != "" {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
		if err != nil {
			log.Error().Err(err).Msg("notificador telegram no disponible, usando log")
			notifier = notify.NewLogNotifier(log)
		} else {
			notifier = tg
		}
	} else {
		notifier = notify.NewLogNotifier(log)
	}
	evaluator := alerts.NewEvaluator(productRepo, groupRepo, notifier, log)
	scheduler := alerts.NewScheduler(evaluator, time.Duration(cfg.Alerts.RefreshMinutes)*time.Minute, log)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// Cambios de productos desde fuera de la API (LISTEN/NOTIFY)
	if listener != nil {
		go listener.Listen(ctx, scheduler.Trigger)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		CatalogUC:          catalogUC,
		RegisterMovement:   registerMovementUC,
		DashboardUC:        dashboardUC,
		ReportUC:           reportUC,
		AlertEvaluator:     evaluator,
		AlertScheduler:     scheduler,
		JWTSecret:          cfg.JWT.Secret,
		OnInventoryChanged: scheduler.Trigger,
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

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// runMigrations aplica las migraciones goose pendientes con el driver
// database/sql de pgx.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

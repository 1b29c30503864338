package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/smartsell/smartsell-api/internal/application/auth"
	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/application/reports"
	"github.com/smartsell/smartsell-api/internal/infrastructure/bolt"
	"github.com/smartsell/smartsell-api/internal/infrastructure/jsonfile"
	"github.com/smartsell/smartsell-api/internal/infrastructure/memory"
	infrapdf "github.com/smartsell/smartsell-api/internal/infrastructure/pdf"
	"github.com/smartsell/smartsell-api/internal/infrastructure/postgres"
	httpRouter "github.com/smartsell/smartsell-api/internal/interfaces/http"
	"github.com/smartsell/smartsell-api/pkg/config"
	"github.com/smartsell/smartsell-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	productStore, saleStore, closeStore, err := buildStores(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer closeStore()

	core := ledger.NewCore(productStore, saleStore)
	if err := core.Open(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar inventario y libro de ventas")
	}

	authUC, err := auth.NewUseCase(auth.OwnerAccount{
		Email:        cfg.Owner.Email,
		Password:     cfg.Owner.Password,
		Name:         cfg.Owner.Name,
		BusinessName: cfg.Owner.BusinessName,
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cuenta del dueño")
	}

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportsUC := reports.NewUseCase(core, pdfGenerator, cfg.Owner.BusinessName)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "SmartSell API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Core:              core,
		AuthUC:            authUC,
		ReportsUC:         reportsUC,
		JWTSecret:         cfg.JWT.Secret,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
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

// buildStores construye el colaborador de persistencia según STORAGE_DRIVER.
// Devuelve también la función de cierre del motor (no-op para memory y file).
func buildStores(ctx context.Context, cfg *config.Config) (ledger.ProductStore, ledger.SaleStore, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		if cfg.Storage.Demo {
			store = memory.NewDemoStore()
		}
		return store, store, noop, nil

	case config.StorageFile:
		store, err := jsonfile.NewStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, store, noop, nil

	case config.StorageBolt:
		store, err := bolt.NewStore(cfg.Storage.BoltPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, store, func() { _ = store.Close() }, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, nil, err
		}
		store := postgres.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return store, store, pool.Close, nil
	}
	return nil, nil, nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
}

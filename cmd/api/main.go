package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/tu-usuario/petshop-pos/internal/application/analytics"
	appbackup "github.com/tu-usuario/petshop-pos/internal/application/backup"
	"github.com/tu-usuario/petshop-pos/internal/application/ledger"
	"github.com/tu-usuario/petshop-pos/internal/application/usecase"
	"github.com/tu-usuario/petshop-pos/internal/infrastructure/bolt"
	infrapdf "github.com/tu-usuario/petshop-pos/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/petshop-pos/internal/interfaces/http"
	"github.com/tu-usuario/petshop-pos/pkg/config"
	"github.com/tu-usuario/petshop-pos/pkg/logger"
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

	store, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir almacén local")
	}
	defer store.Close()

	productRepo := bolt.NewProductRepo(store)
	orderRepo := bolt.NewOrderRepo(store)
	transactionRepo := bolt.NewTransactionRepo(store)
	txRunner := bolt.NewTxRunner(store)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := ledger.NewOrderUseCase(txRunner, orderRepo)
	analyticsUC := appanalytics.NewAnalyticsUseCase(
		productRepo, orderRepo, transactionRepo,
		pdfGenerator, cfg.App.Name, cfg.POS.StockAlertThreshold,
	)
	backupUC := appbackup.NewBackupUseCase(txRunner, productRepo, orderRepo, transactionRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		OrderUC:     orderUC,
		AnalyticsUC: analyticsUC,
		BackupUC:    backupUC,
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

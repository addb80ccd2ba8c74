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

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/auth"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/crm"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/hr"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/reports"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/usecase"
	attpolicy "github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/attendance"
	infrapdf "github.com/AniketRabade/Prjoect-Management-CRM/internal/infrastructure/pdf"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/infrastructure/postgres"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/infrastructure/storage"
	httpRouter "github.com/AniketRabade/Prjoect-Management-CRM/internal/interfaces/http"
	"github.com/AniketRabade/Prjoect-Management-CRM/pkg/config"
	"github.com/AniketRabade/Prjoect-Management-CRM/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	objectStorage := storage.NewHTTPStorage(cfg.Storage)

	authUC := auth.NewAuthUseCase(userRepo, objectStorage, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, objectStorage, log.Zerolog())
	clientUC := usecase.NewClientUseCase(clientRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo)

	relations := usecase.NewRelationRegistry(projectRepo, leadRepo, clientRepo, saleRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, userRepo, relations)

	saleUC := crm.NewSaleUseCase(saleRepo, projectRepo, clientRepo)
	leadUC := crm.NewLeadUseCase(leadRepo, userRepo)
	convertLeadUC := crm.NewConvertLeadUseCase(txRunner, leadRepo)

	// Reporte PDF de ventas
	pdfGenerator := infrapdf.NewMarotoSalesReportGenerator()
	salesReportUC := reports.NewSalesReportUseCase(saleRepo, clientRepo, pdfGenerator)

	policy := attpolicy.Policy{
		ExpectedHour:   cfg.Attendance.ExpectedCheckInHour,
		ExpectedMinute: cfg.Attendance.ExpectedCheckInMinute,
		GraceMinutes:   cfg.Attendance.GraceMinutes,
		HalfDayHours:   cfg.Attendance.HalfDayHours,
		ShortDayHours:  cfg.Attendance.ShortDayHours,
	}
	attendanceUC := hr.NewAttendanceUseCase(attendanceRepo, policy)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ClientUC:     clientUC,
		ProjectUC:    projectUC,
		TaskUC:       taskUC,
		SaleUC:       saleUC,
		SalesReport:  salesReportUC,
		LeadUC:       leadUC,
		ConvertLead:  convertLeadUC,
		AttendanceUC: attendanceUC,
		UserRepo:     userRepo,
		JWTSecret:    cfg.JWT.Secret,
		CookieDays:   cfg.Cookie.ExpiresDays,
		Environment:  cfg.App.Env,
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

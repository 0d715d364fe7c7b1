package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bsalazar/descansos-api/internal/application/auth"
	"github.com/bsalazar/descansos-api/internal/application/usecase"
	"github.com/bsalazar/descansos-api/internal/infrastructure/cache"
	"github.com/bsalazar/descansos-api/internal/infrastructure/email"
	"github.com/bsalazar/descansos-api/internal/infrastructure/pdf"
	"github.com/bsalazar/descansos-api/internal/infrastructure/postgres"
	"github.com/bsalazar/descansos-api/internal/infrastructure/sunat"
	httpRouter "github.com/bsalazar/descansos-api/internal/interfaces/http"
	"github.com/bsalazar/descansos-api/pkg/config"
	"github.com/bsalazar/descansos-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	paisRepo := postgres.NewCatalogoRepository(pool, postgres.TablaPaises)
	cargoRepo := postgres.NewCatalogoRepository(pool, postgres.TablaCargos)
	sedeRepo := postgres.NewCatalogoRepository(pool, postgres.TablaSedes)
	areaRepo := postgres.NewCatalogoRepository(pool, postgres.TablaAreas)
	tipoDocRepo := postgres.NewCatalogoRepository(pool, postgres.TablaTiposDocumento)
	tipoContRepo := postgres.NewCatalogoRepository(pool, postgres.TablaTiposContingencia)

	personaRepo := postgres.NewPersonaRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	representanteRepo := postgres.NewRepresentanteLegalRepository(pool)
	trabajadorRepo := postgres.NewTrabajadorSocialRepository(pool)
	diagnosticoRepo := postgres.NewDiagnosticoRepository(pool)
	descansoRepo := postgres.NewDescansoMedicoRepository(pool)
	documentoRepo := postgres.NewDocumentoRepository(pool)
	canjeRepo := postgres.NewCanjeRepository(pool)
	reembolsoRepo := postgres.NewReembolsoRepository(pool)
	cobroRepo := postgres.NewCobroRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	sesionRepo := postgres.NewSesionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache RUC opcional: REDIS_ADDR vacío lo desactiva.
	var rucCache usecase.CacheRUC
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		rucCache = cache.NewRucCache(redisClient, time.Duration(cfg.Redis.TTLHoras)*time.Hour)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de consultas RUC habilitado")
	}

	sunatClient := sunat.NewClient(cfg.SUNAT.BaseURL, cfg.SUNAT.Token)

	// Correo de credenciales opcional: sin SMTP_HOST solo se loguea.
	var mailer usecase.Mailer
	if cfg.SMTP.Habilitado() {
		mailer = email.NewClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User,
			cfg.SMTP.Password, cfg.SMTP.FromName, cfg.SMTP.FromEmail)
	} else {
		log.Warn().Msg("SMTP no configurado: las credenciales de usuarios nuevos no se enviarán")
	}

	constancias := pdf.NewConstanciaGenerator(cfg.App.Name)

	// Casos de uso
	paisUC := usecase.NewCatalogoUseCase(paisRepo)
	cargoUC := usecase.NewCatalogoUseCase(cargoRepo)
	sedeUC := usecase.NewCatalogoUseCase(sedeRepo)
	areaUC := usecase.NewCatalogoUseCase(areaRepo)
	tipoDocUC := usecase.NewCatalogoUseCase(tipoDocRepo)
	tipoContUC := usecase.NewCatalogoUseCase(tipoContRepo)

	personaUC := usecase.NewPersonaUseCase(personaRepo)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo, sunatClient, rucCache)
	representanteUC := usecase.NewRepresentanteLegalUseCase(representanteRepo, empresaRepo)
	trabajadorUC := usecase.NewTrabajadorSocialUseCase(trabajadorRepo, personaRepo, txRunner)
	diagnosticoUC := usecase.NewDiagnosticoUseCase(diagnosticoRepo)
	descansoUC := usecase.NewDescansoMedicoUseCase(descansoRepo, constancias)
	documentoUC := usecase.NewDocumentoUseCase(documentoRepo, descansoRepo, txRunner,
		cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	canjeUC := usecase.NewCanjeUseCase(canjeRepo, descansoRepo)
	reembolsoUC := usecase.NewReembolsoUseCase(reembolsoRepo, canjeRepo)
	cobroUC := usecase.NewCobroUseCase(cobroRepo, reembolsoRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, mailer)
	authUC := auth.NewUseCase(usuarioRepo, sesionRepo, auth.Options{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Uploads.MaxBytes) + 1024*1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Descansos Médicos API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PaisUC:             paisUC,
		CargoUC:            cargoUC,
		SedeUC:             sedeUC,
		AreaUC:             areaUC,
		TipoDocumentoUC:    tipoDocUC,
		TipoContingenciaUC: tipoContUC,
		PersonaUC:          personaUC,
		EmpresaUC:          empresaUC,
		RepresentanteUC:    representanteUC,
		TrabajadorUC:       trabajadorUC,
		DiagnosticoUC:      diagnosticoUC,
		DescansoUC:         descansoUC,
		DocumentoUC:        documentoUC,
		CanjeUC:            canjeUC,
		ReembolsoUC:        reembolsoUC,
		CobroUC:            cobroUC,
		UsuarioUC:          usuarioUC,
		AuthUC:             authUC,
		JWTSecret:          cfg.JWT.Secret,
		Sesiones:           sesionRepo,
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

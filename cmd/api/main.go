package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fabriciolima31/webserviceSenapp/docs"
	httphandlers "github.com/fabriciolima31/webserviceSenapp/internal/handlers/http"
	"github.com/fabriciolima31/webserviceSenapp/internal/handlers/middleware"
	"github.com/fabriciolima31/webserviceSenapp/internal/infrastructure/config"
	"github.com/fabriciolima31/webserviceSenapp/internal/infrastructure/crypto"
	"github.com/fabriciolima31/webserviceSenapp/internal/infrastructure/i18n"
	"github.com/fabriciolima31/webserviceSenapp/internal/infrastructure/logging"
	"github.com/fabriciolima31/webserviceSenapp/internal/infrastructure/persistence/postgres"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

//	@title			webserviceSenapp API
//	@version		1.0
//	@description	Backend de consultas públicas: registro, login por chave de API e pareceres com estatísticas agregadas.
//	@BasePath		/v1

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level, cfg.Env)
	logger.Info("starting webserviceSenapp",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	consultaRepo := postgres.NewConsultaRepository(db)
	parecerRepo := postgres.NewParecerRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	hasher := crypto.NewBcryptHasher()
	apiKeyService := services.NewAPIKeyService(userRepo)
	userService := services.NewUserService(userRepo, apiKeyService, hasher, uow, logger)
	consultaService := services.NewConsultaService(consultaRepo, parecerRepo, logger)
	parecerService := services.NewParecerService(parecerRepo, consultaRepo, uow, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	consultaHandler := httphandlers.NewConsultaHandler(consultaService)
	parecerHandler := httphandlers.NewParecerHandler(parecerService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Gate de autenticação por chave de API
	auth := middleware.NewAPIKeyAuth(apiKeyService, i18nService, logger)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/v1")
	{
		// Rotas públicas
		v1.POST("/register", userHandler.Register)
		v1.POST("/login", userHandler.Login)
		v1.POST("/consultas/busca", consultaHandler.BuscarPorNome)

		// Rotas autenticadas
		authenticated := v1.Group("", auth.Authenticate())
		{
			authenticated.GET("/consultas", consultaHandler.List)
			authenticated.GET("/consultas/:id/estatisticas", consultaHandler.Estatisticas)
			authenticated.GET("/consultas/:id/parecer/status", parecerHandler.Status)
			authenticated.POST("/pareceres", parecerHandler.Submit)
			authenticated.POST("/pareceres/busca", consultaHandler.ParecerDoUsuario)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

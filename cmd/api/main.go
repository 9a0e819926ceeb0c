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

	"github.com/voujunto/voujunto-backend/docs"
	"github.com/voujunto/voujunto-backend/internal/handlers/dto"
	httphandlers "github.com/voujunto/voujunto-backend/internal/handlers/http"
	"github.com/voujunto/voujunto-backend/internal/handlers/middleware"
	"github.com/voujunto/voujunto-backend/internal/handlers/ws"
	"github.com/voujunto/voujunto-backend/internal/infrastructure/auth"
	"github.com/voujunto/voujunto-backend/internal/infrastructure/config"
	"github.com/voujunto/voujunto-backend/internal/infrastructure/i18n"
	"github.com/voujunto/voujunto-backend/internal/infrastructure/logging"
	"github.com/voujunto/voujunto-backend/internal/infrastructure/persistence/postgres"
	"github.com/voujunto/voujunto-backend/internal/services"
)

//	@title			Vou Junto API
//	@version		1.0
//	@description	API de aventuras compartilhadas: eventos, trilhas, caronas e parceiros de viagem
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting voujunto backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	eventoRepo := postgres.NewEventoRepository(db)
	trilhaRepo := postgres.NewTrilhaRepository(db)
	caronaRepo := postgres.NewCaronaRepository(db)
	viagemRepo := postgres.NewViagemRepository(db)
	perfilRepo := postgres.NewPerfilRepository(db)
	aventuraRepo := postgres.NewAventuraRepository(db)

	// Feed ao vivo via websocket
	hub := ws.NewHub(logger)
	defer hub.Fechar()

	// Inicializar services
	publicacaoService := services.NewPublicacaoService(
		eventoRepo, trilhaRepo, caronaRepo, viagemRepo,
		perfilRepo, aventuraRepo, hub, logger,
	)
	aventuraService := services.NewAventuraService(
		eventoRepo, trilhaRepo, caronaRepo, viagemRepo, logger,
	)
	buscaService := services.NewBuscaService(aventuraRepo, perfilRepo, logger)
	perfilService := services.NewPerfilService(perfilRepo, logger)

	// Inicializar handlers
	publicacaoHandler := httphandlers.NewPublicacaoHandler(publicacaoService, aventuraService)
	aventuraHandler := httphandlers.NewAventuraHandler(aventuraService, buscaService)
	perfilHandler := httphandlers.NewPerfilHandler(perfilService)

	// Autenticação (tokens emitidos pelo colaborador externo)
	authMiddleware := middleware.NewAuthMiddleware(auth.NewService(cfg.JWT.Secret))

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterValidators()

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
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		eventos := v1.Group("/eventos")
		{
			eventos.POST("", authMiddleware.RequireAuth(), publicacaoHandler.CriarEvento)
			eventos.GET("", publicacaoHandler.ListarEventos)
			eventos.GET("/:id", publicacaoHandler.BuscarEvento)
		}

		trilhas := v1.Group("/trilhas")
		{
			trilhas.POST("", authMiddleware.RequireAuth(), publicacaoHandler.CriarTrilha)
			trilhas.GET("", publicacaoHandler.ListarTrilhas)
			trilhas.GET("/:id", publicacaoHandler.BuscarTrilha)
		}

		caronas := v1.Group("/caronas")
		{
			caronas.POST("", authMiddleware.RequireAuth(), publicacaoHandler.CriarCarona)
			caronas.GET("", publicacaoHandler.ListarCaronas)
			caronas.GET("/:id", publicacaoHandler.BuscarCarona)
		}

		viagens := v1.Group("/viagens")
		{
			viagens.POST("", authMiddleware.RequireAuth(), publicacaoHandler.CriarViagem)
			viagens.GET("", publicacaoHandler.ListarViagens)
			viagens.GET("/:id", publicacaoHandler.BuscarViagem)
		}

		aventuras := v1.Group("/aventuras")
		{
			aventuras.GET("", aventuraHandler.ListarAventuras)
			aventuras.GET("/busca", authMiddleware.OptionalAuth(), aventuraHandler.BuscarAventuras)
		}

		perfil := v1.Group("/perfil")
		perfil.Use(authMiddleware.RequireAuth())
		{
			perfil.GET("", perfilHandler.BuscarPerfil)
			perfil.PUT("", perfilHandler.AtualizarPerfil)
		}
	}

	// Feed ao vivo
	router.GET("/ws/aventuras", hub.Handle)

	// Swagger
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

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

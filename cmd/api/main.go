package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/db"
	httpadapter "github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http/handlers"
	httpmiddleware "github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http/middleware"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/openai"
	appservice "github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/app/service"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/config"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/pkg/token"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	tokens := token.NewManager([]byte(cfg.JWTSecret), token.TTL)

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)

	authService := appservice.NewAuthService(userRepository, tokens)
	taskService := appservice.NewTaskService(taskRepository)
	descriptionService := appservice.NewDescriptionService(openai.NewClient(openai.Config{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
	}))

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	aiHandler := handlers.NewAIHandler(descriptionService)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("failed to set trusted proxies", zap.Error(err))
	}
	httpadapter.RegisterRoutes(r, authService, healthHandler, authHandler, taskHandler, aiHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

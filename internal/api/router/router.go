package router

import (
	"net/http"

	"coursecraft/internal/api/handler"
	"coursecraft/internal/config"
	"coursecraft/internal/database"
	"coursecraft/internal/middleware"
	"coursecraft/internal/pdf"
	"coursecraft/internal/provider"
	"coursecraft/internal/repository"
	"coursecraft/internal/service"
	"coursecraft/internal/session"
	"coursecraft/internal/web"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"
)

// New builds the application: every dependency is constructed here once
// and passed down explicitly, so there are no package-level singletons.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *gorm.DB, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initialized")

	// 1. Open the SQLite database and migrate the schema
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.DBPath).Msg("Failed to open database")
		return nil, nil, err
	}
	logger.Info().Str("path", cfg.DBPath).Msg("Database connection successful")

	// 2. Parse templates
	templates, err := web.New()
	if err != nil {
		return nil, nil, err
	}

	// 3. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 4. Initialize session store and provider clients
	store := session.NewCookieStore(cfg.SessionSecret)
	generator := provider.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
	pdfRenderer := pdf.NewRenderer(cfg.WkhtmltopdfPath)

	// 5. Initialize repositories & services & handlers
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)

	authSvc := service.NewAuthService(userRepo)
	courseSvc := service.NewCourseService(generator, courseRepo)
	quizSvc := service.NewQuizService(openaiClient, cfg.OpenAIModel)

	authHandler := handler.NewAuthHandler(authSvc, store, templates, validate, logger)
	pageHandler := handler.NewPageHandler(courseSvc, templates, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, pdfRenderer, templates, validate, logger)
	quizHandler := handler.NewQuizHandler(quizSvc, store, templates, validate, logger)

	// 6. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(store, authSvc)

	// 7. Assemble routes
	mux := http.NewServeMux()
	authHandler.RegisterRoutes(mux, authMiddleware)
	pageHandler.RegisterRoutes(mux, authMiddleware)
	courseHandler.RegisterRoutes(mux, authMiddleware)
	quizHandler.RegisterRoutes(mux)

	// 8. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger, c.Handler(mux)), db, nil
}

package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/janvipargai1/ai-interview-simulator/internal/config"
	"github.com/janvipargai1/ai-interview-simulator/internal/domain/fiber/handler"
	"github.com/janvipargai1/ai-interview-simulator/internal/logger"
	"github.com/janvipargai1/ai-interview-simulator/internal/repository"
	"github.com/janvipargai1/ai-interview-simulator/internal/service"
	"github.com/janvipargai1/ai-interview-simulator/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zapLogger, err := logger.New(appConfig.Env == "production", os.Getenv("APP_DEBUG") == "true")
	if err != nil {
		log.Fatal(err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	generator := buildGenerator(ctx, zapLogger)
	tts := service.NewTTSService(zapLogger)

	sessions := repository.NewSessionRepository()
	questions := usecase.NewQuestionGenerator(generator, zapLogger)
	evaluator := usecase.NewAnswerEvaluator(generator, zapLogger)
	uc := usecase.NewInterviewUsecase(sessions, questions, evaluator, tts, zapLogger)

	interviewHandler := handler.NewInterviewHandler(uc)
	interviewHandler.RegisterRoutes(app)

	zapLogger.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

// buildGenerator picks the model provider: Gemini when a key is
// configured, OpenRouter otherwise.
func buildGenerator(ctx context.Context, zapLogger *zap.Logger) usecase.ContentGenerator {
	if config.LoadGeminiConfig().APIKey != "" {
		gemini, err := service.NewGeminiService(ctx, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed to create gemini service", zap.Error(err))
		}
		zapLogger.Info("using gemini model", zap.String("model", gemini.Model))
		return gemini
	}

	openRouter := service.NewOpenRouterService(zapLogger)
	if openRouter.APIKey == "" {
		zapLogger.Fatal("no model provider configured, set GEMINI_API_KEY or OPENROUTER_API_KEY")
	}
	zapLogger.Info("using openrouter model", zap.String("model", openRouter.Model))
	return openRouter
}

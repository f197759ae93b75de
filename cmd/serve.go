package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "learn-tasks.com/learn-tasks/internal/configs"
	"learn-tasks.com/learn-tasks/internal/genai"
	httpapi "learn-tasks.com/learn-tasks/internal/http"
	"learn-tasks.com/learn-tasks/internal/queue"
	repository "learn-tasks.com/learn-tasks/internal/repositories"
	"learn-tasks.com/learn-tasks/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the learning-task HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		tokens := queue.NewRedisTokenManager(redisClient, cfg.RedisTokenKey)
		if err := tokens.InitializeTokens(context.Background(), cfg.GenerationConcurrency); err != nil {
			log.Fatalf("failed to initialize generation tokens: %v", err)
		}

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		categoryRepo := repository.NewCategoryRepository(database)

		// A missing credential disables generation instead of refusing
		// to boot; the endpoint reports the misconfiguration per request.
		var generator genai.TaskGenerator
		client, err := genai.NewClient(genai.ClientConfig{
			APIKey:        cfg.AnthropicAPIKey,
			Model:         cfg.AnthropicModel,
			UseAWSBedrock: cfg.UseAWSBedrock,
			AWSRegion:     cfg.AWSRegion,
			AWSProfile:    cfg.AWSProfile,
		})
		if err != nil {
			log.Printf("task generation disabled: %v", err)
		} else {
			generator = client
		}

		userService := services.NewUserService(userRepo)
		taskService := services.NewTaskService(userService, taskRepo, categoryRepo)
		generationService := services.NewGenerationService(userService, taskRepo, generator, tokens)
		categoryService := services.NewCategoryService(userService, categoryRepo)

		e := echo.New()
		handler := httpapi.NewHandler(userService, taskService, generationService, categoryService)
		httpapi.Register(e, handler, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"

	"tripway/cmd/fx/planner_fx"
	"tripway/cmd/fx/session_fx"
	"tripway/cmd/fx/trip_fx"
	"tripway/internal/api/controllers"
	"tripway/pkg/logger"
	"tripway/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := logger.Init(zapcore.InfoLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	app := fx.New(
		planner_fx.Module,
		session_fx.Module,
		trip_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(tripController *controllers.TripController) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine, tripController *controllers.TripController) {
	api := r.Group("/api")

	requestGroup := api.Group("/request")
	requestGroup.POST("/parse", tripController.ParseRequestHandler)
	requestGroup.GET("/preferences", tripController.QuickPreferencesHandler)
	requestGroup.GET("/sessions/:id", tripController.SessionHandler)
	requestGroup.POST("/sessions/:id/resubmit", tripController.ResubmitHandler)

	tripGroup := api.Group("/trip")
	tripGroup.POST("/plan", tripController.CreatePlanHandler)
	tripGroup.POST("/export", tripController.ExportPlanHandler)

	api.GET("/health", tripController.HealthHandler)
}

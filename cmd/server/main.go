package main

import (
	"os"

	"go-grocery-pos/internal/database"
	"go-grocery-pos/internal/handlers"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := godotenv.Load(); err != nil {
		zap.L().Warn("no .env file found")
	}

	database.Connect()

	r := handlers.NewRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	zap.L().Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		zap.L().Fatal("server failed to start", zap.Error(err))
	}
}

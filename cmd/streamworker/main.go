package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"workorder_rollup/internal/adapter/persistence/repository"
	"workorder_rollup/internal/adapter/stream"
	"workorder_rollup/internal/infrastructure/database"
	"workorder_rollup/internal/infrastructure/logger"
	"workorder_rollup/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	appLog, err := logger.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	cfg, err := stream.ConfigFromEnv()
	if err != nil {
		appLog.Fatal("Invalid stream configuration", "error", err.Error())
	}

	ddb := database.ConnectDynamoDB()
	rollupUseCase := usecase.NewRollupUseCase(
		repository.NewLineDynamoRepository(ddb),
		repository.NewWorkOrderDynamoRepository(ddb),
		appLog,
	)
	consumer := stream.NewConsumer(database.ConnectDynamoDBStreams(), rollupUseCase, cfg, appLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil {
		appLog.Error("stream consumer exited", "error", err.Error())
	}
}

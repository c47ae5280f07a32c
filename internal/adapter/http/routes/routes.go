package routes

import (
	"log"
	"os"

	_ "workorder_rollup/docs" // generated by swag init
	"workorder_rollup/internal/adapter/http/handlers"
	"workorder_rollup/internal/adapter/persistence/repository"
	"workorder_rollup/internal/infrastructure/database"
	"workorder_rollup/internal/infrastructure/logger"
	"workorder_rollup/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	appLog, err := logger.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	router := NewRouter(appLog)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	appLog.Info("starting http server", "port", port)
	if err := router.Run(":" + port); err != nil {
		appLog.Fatal("Failed to startup the application", "error", err.Error())
	}
}

// NewRouter wires repositories, the rollup use case and handlers onto a gin engine.
func NewRouter(appLog *logger.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, appLog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ddb := database.ConnectDynamoDB()
	lineRepo := repository.NewLineDynamoRepository(ddb)
	workOrderRepo := repository.NewWorkOrderDynamoRepository(ddb)

	rollupUseCase := usecase.NewRollupUseCase(lineRepo, workOrderRepo, appLog)
	rollupHandler := handlers.NewRollupHandler(rollupUseCase, appLog)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRollupRoutes(v1, rollupHandler)
	return router
}

func setMiddlewares(router *gin.Engine, appLog *logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLog.Error("Recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(500)
	}))
}

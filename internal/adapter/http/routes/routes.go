package routes

import (
	"log"
	"os"
	"strconv"

	"cotfact/internal/adapter/http/handlers"
	repository2 "cotfact/internal/adapter/persistence/repository"
	"cotfact/internal/infrastructure/database"
	"cotfact/internal/usecase"
	"cotfact/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	documentRepo := repository2.NewDocumentDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	documentUseCase := usecase.NewDocumentUseCase(documentRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)

	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	v1 := router.Group("/v1")
	v1.Use(auth.BearerMiddleware())
	addPingRoutes(v1)
	addDocumentRoutes(v1, documentHandler)
	addCustomerRoutes(v1, customerHandler)
	addSettingsRoutes(v1, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

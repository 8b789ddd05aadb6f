package routes

import (
	"log"
	"strconv"

	_ "studio_arq/docs" // This will be auto-generated
	"studio_arq/internal/adapter/http/handlers"
	repository2 "studio_arq/internal/adapter/persistence/repository"
	"studio_arq/internal/infrastructure/database"
	"studio_arq/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ticketRepo := repository2.NewTicketDynamoRepository(ddb)
	orderedItemRepo := repository2.NewOrderedItemDynamoRepository(ddb)
	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	architectRepo := repository2.NewArchitectDynamoRepository(ddb)
	creditLedger := repository2.NewCreditLedgerDynamoRepository(ddb)

	triageUseCase := usecase.NewTicketTriageUseCase(ticketRepo, usecase.NewSystemClock())
	reorderCoordinator := usecase.NewReorderCoordinator(orderedItemRepo)
	accrualUseCase := usecase.NewIncentiveAccrualUseCase(architectRepo, creditLedger)
	checklistUseCase := usecase.NewChecklistUseCase(workOrderRepo, usecase.NewUUIDKeyGenerator())
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, usecase.NewSystemClock(), accrualUseCase)
	architectUseCase := usecase.NewArchitectUseCase(architectRepo)

	triageHandler := handlers.NewTriageHandler(triageUseCase)
	reorderHandler := handlers.NewReorderHandler(reorderCoordinator)
	checklistHandler := handlers.NewChecklistHandler(checklistUseCase)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase, accrualUseCase, architectUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStudioRoutes(v1, triageHandler, reorderHandler, checklistHandler, workOrderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/elburim/elburim-backend/config"
	"github.com/elburim/elburim-backend/internal/app/controller"
	"github.com/elburim/elburim-backend/internal/middleware"
)

type Router struct {
	memberController      *controller.MemberController
	consultController     *controller.ConsultationController
	measurementController *controller.MeasurementController
	workOrderController   *controller.WorkOrderController
	calendarController    *controller.CalendarController
	stockController       *controller.StockController
	settingsController    *controller.SettingsController
	reportController      *controller.ReportController
	config                *config.Config
}

func NewRouter(
	memberController *controller.MemberController,
	consultController *controller.ConsultationController,
	measurementController *controller.MeasurementController,
	workOrderController *controller.WorkOrderController,
	calendarController *controller.CalendarController,
	stockController *controller.StockController,
	settingsController *controller.SettingsController,
	reportController *controller.ReportController,
	cfg *config.Config,
) *Router {
	return &Router{
		memberController:      memberController,
		consultController:     consultController,
		measurementController: measurementController,
		workOrderController:   workOrderController,
		calendarController:    calendarController,
		stockController:       stockController,
		settingsController:    settingsController,
		reportController:      reportController,
		config:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "ELBURIM API is running",
		})
	})

	// 작성된 주문서 PDF / 리포트 다운로드
	router.Static("/files/forms", r.config.Shop.FilledFormDir)
	router.Static("/files/reports", r.config.Shop.ReportDir)

	v1 := router.Group("/api/v1")
	{
		members := v1.Group("/members")
		{
			members.GET("", r.memberController.SearchMembers)
			members.POST("", r.memberController.CreateMember)
			members.GET("/:id", r.memberController.GetMember)
			members.PUT("/:id", r.memberController.UpdateMember)
			members.DELETE("/:id", r.memberController.DeleteMember)

			members.GET("/:id/consultations", r.consultController.GetMemberConsultations)
			members.GET("/:id/measurements", r.measurementController.GetMemberMeasurements)
			members.GET("/:id/measurements/latest", r.measurementController.GetLatestMeasurement)
			members.GET("/:id/work-orders", r.workOrderController.GetMemberWorkOrders)
		}

		consultations := v1.Group("/consultations")
		{
			consultations.POST("", r.consultController.CreateConsultation)
			consultations.PUT("/:id", r.consultController.UpdateConsultation)
			consultations.DELETE("/:id", r.consultController.DeleteConsultation)
		}

		measurements := v1.Group("/measurements")
		{
			measurements.POST("", r.measurementController.CreateMeasurement)
			measurements.DELETE("/:id", r.measurementController.DeleteMeasurement)
		}

		workOrders := v1.Group("/work-orders")
		{
			workOrders.GET("", r.workOrderController.ListWorkOrders)
			workOrders.POST("", r.workOrderController.CreateWorkOrder)
			workOrders.GET("/:id", r.workOrderController.GetWorkOrder)
			workOrders.PATCH("/:id/status", r.workOrderController.UpdateWorkOrderStatus)
			workOrders.DELETE("/:id", r.workOrderController.DeleteWorkOrder)
		}

		cal := v1.Group("/calendar")
		{
			cal.POST("/transform", r.calendarController.TransformCalendar)
			cal.GET("/orders", r.calendarController.GetDeliveryOrders)
			cal.GET("/orders/:orderNo", r.calendarController.GetDeliveryOrder)
			cal.GET("/orders/:orderNo/fabric-usage", r.calendarController.GetOrderFabricUsage)
			cal.GET("/unresolved", r.calendarController.GetUnresolvedEntries)
		}

		stock := v1.Group("/stock")
		{
			stock.GET("/items", r.stockController.ListItems)
			stock.POST("/items", r.stockController.RegisterItem)
			stock.GET("/items/:id/movements", r.stockController.GetItemMovements)
			stock.GET("/movements", r.stockController.ListMovements)
			stock.POST("/movements", r.stockController.RecordMovement)
			stock.GET("/balances", r.stockController.GetBalances)
			stock.POST("/auto-out", r.stockController.AutoStockOut)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("/size-rules", r.settingsController.GetSizeRules)
			settings.PUT("/size-rules", r.settingsController.ReplaceSizeRules)
			settings.GET("/form-fields", r.settingsController.GetFormFields)
			settings.PUT("/form-fields", r.settingsController.UpdateFormField)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("", r.reportController.ListReportRuns)
			reports.POST("/production", r.reportController.GenerateProductionReport)
			reports.POST("/crm", r.reportController.GenerateCRMReport)
			reports.POST("/stock", r.reportController.GenerateStockReport)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

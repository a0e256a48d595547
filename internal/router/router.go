package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/service"
)

// Config holds the dependencies the router wires together
type Config struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	BasePath string
	Metrics  *metrics.Metrics
}

// Setup builds the gin engine with all middleware, handlers and routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(cfg.Metrics))

	// Repositories
	ticketRepo := repository.NewTicketRepository(cfg.DB)
	tagRepo := repository.NewTagRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Services
	ticketService := service.NewTicketService(ticketRepo, commentRepo, cfg.Metrics, cfg.Logger)
	tagService := service.NewTagService(tagRepo, ticketRepo, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, ticketRepo, cfg.Metrics, cfg.Logger)

	// Handlers
	ticketHandler := handler.NewTicketHandler(ticketService)
	tagHandler := handler.NewTagHandler(tagService)
	commentHandler := handler.NewCommentHandler(commentService)

	// Operational endpoints live at the root regardless of base path
	r.GET("/health", healthCheck(cfg.DB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		api.GET("/board", ticketHandler.GetBoard)

		tickets := api.Group("/tickets")
		{
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.POST("/move", ticketHandler.MoveTicket)
			tickets.POST("/reorder", ticketHandler.ReorderColumn)
			tickets.DELETE("/done/clear", ticketHandler.ClearDone)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.PUT("/:id", ticketHandler.UpdateTicket)
			tickets.DELETE("/:id", ticketHandler.DeleteTicket)

			tickets.POST("/:id/tags", tagHandler.AttachTag)
			tickets.DELETE("/:id/tags/:tagId", tagHandler.DetachTag)

			tickets.GET("/:id/comments", commentHandler.ListComments)
			tickets.POST("/:id/comments", commentHandler.CreateComment)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.POST("", tagHandler.CreateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		api.DELETE("/comments/:id", commentHandler.DeleteComment)
	}

	return r
}

// healthCheck reports liveness and database connectivity
func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		if db == nil {
			dbStatus = "disconnected"
		} else if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "disconnected"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": dbStatus,
		})
	}
}

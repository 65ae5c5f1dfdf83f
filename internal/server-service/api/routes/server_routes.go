package routes

import (
	"RBR_Server_Side/internal/server-service/api/handler"

	"github.com/gin-gonic/gin"
)

func SetUpServerRoutes(r *gin.Engine, serverHandler handler.ServerHandler) {
	serverRoutes := r.Group("/api/servers")
	{
		serverRoutes.GET("/", serverHandler.GetServers())
		serverRoutes.POST("/add", serverHandler.CreateServer())
		serverRoutes.GET("/status", serverHandler.GetServersStatus())
		serverRoutes.GET("/export", serverHandler.ExportServersToExcelFile())
		serverRoutes.POST("/reports", serverHandler.ReportServersActivity())
		serverRoutes.GET("/:id", serverHandler.GetServerById())
		serverRoutes.PUT("/:id", serverHandler.UpdateServer())
		serverRoutes.PATCH("/:id", serverHandler.PartialUpdateServer())
		serverRoutes.DELETE("/:id", serverHandler.DeleteServer())
	}
}

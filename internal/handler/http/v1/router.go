package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты пациентской стороны
	emergency := api.Group("/emergency")
	{
		emergency.POST("/requests", h.createRequest)
		emergency.GET("/requests/:id/status", h.getRequestStatus)
		emergency.PUT("/requests/:id/location", h.updateLocation)
		emergency.POST("/requests/:id/complete", h.completeRequest)
		emergency.GET("/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getStats)
	}

	// Маршруты стороны больниц, закрыты API-ключом
	hospital := api.Group("/hospital", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		hospital.POST("/respond", h.respondToRequest)
		hospital.GET("/:id/requests", h.getHospitalView)
		hospital.GET("/:id/requests/:requestId", h.getRequestDetails)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

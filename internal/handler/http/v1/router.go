package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/snaktox/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := JWTAuthMiddleware(h.cfg.JWTSecret, h.logger)

	// Экстренные вызовы доступны только аутентифицированным пользователям
	emergencies := api.Group("/emergencies", auth)
	{
		emergencies.POST("", h.emergencyLimiter.Middleware(), h.createEmergency)
		emergencies.GET("/:id", h.getEmergency)
		emergencies.PUT("/:id/status", h.updateEmergencyStatus)
		emergencies.POST("/:id/assign-hospital", RequireRole(models.RoleAdmin, models.RoleModerator), h.assignHospital)
	}

	// Поиск больниц публичный
	api.GET("/hospitals/nearest", h.nearestHospitals)

	snakes := api.Group("/snakes")
	{
		snakes.POST("/identify", auth, h.identifyLimiter.Middleware(), h.identifySnake)
		snakes.GET("/identification-history", auth, h.identificationHistory)
		snakes.GET("/service-status", h.serviceStatus)
	}

	api.GET("/sms/status", auth, h.smsStatus)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

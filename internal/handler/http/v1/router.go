package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// SOS-кнопка доступна без ключа: пациент в беде не вводит токены
	api.POST("/sos", h.handleSos)

	// Маршруты авторизации пациента по ABHA ID
	auth := api.Group("/auth")
	{
		auth.POST("/request-otp", h.requestOtp)
		auth.POST("/verify-otp", h.verifyOtp)
	}

	// Маршруты диспетчерской панели
	incidents := api.Group("/incidents")
	if len(h.cfg.APIKeys) > 0 {
		incidents.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/assign", h.assignAmbulance)
		incidents.POST("/:id/resolve", h.resolveIncident)
	}

	// Маршруты автопарка
	ambulances := api.Group("/ambulances")
	{
		ambulances.GET("", h.listAmbulances)
		if len(h.cfg.APIKeys) > 0 {
			ambulances.POST("", APIKeyAuthMiddleware(h.cfg, h.logger), h.createAmbulance)
			ambulances.PATCH("/:id/status", APIKeyAuthMiddleware(h.cfg, h.logger), h.setAmbulanceStatus)
		} else {
			ambulances.POST("", h.createAmbulance)
			ambulances.PATCH("/:id/status", h.setAmbulanceStatus)
		}
	}

	// Справочник больниц для карты
	api.GET("/hospitals", h.listHospitals)

	// Маршруты пациентов и медицинских записей
	patients := api.Group("/patients")
	{
		patients.GET("", h.listPatients)
		patients.GET("/:id", h.getPatient)
		patients.GET("/:id/records", h.listMedicalRecords)
	}
	api.POST("/records", h.createMedicalRecord)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

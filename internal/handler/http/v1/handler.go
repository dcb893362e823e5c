package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dispatchService service.DispatchService
	fleetService    service.FleetService
	hospitalService service.HospitalService
	patientService  service.PatientService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	dispatchService service.DispatchService,
	fleetService service.FleetService,
	hospitalService service.HospitalService,
	patientService service.PatientService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		dispatchService: dispatchService,
		fleetService:    fleetService,
		hospitalService: hospitalService,
		patientService:  patientService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Trigger an SOS incident
// @Description Create an SOS incident and auto-assign the nearest available ambulance. With no ambulance available the incident stays pending.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param sos body SosRequest true "SOS request"
// @Success 201 {object} SosResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) handleSos(c *gin.Context) {
	var input SosRequest
	log := h.logger.WithField("method", "handleSos")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatchService.HandleSos(c.Request.Context(), input.PatientID, *input.Latitude, *input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to handle SOS in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, SosResponse{
		Incident:          ModelToIncidentResponse(result.Incident),
		AssignedAmbulance: ModelToAmbulanceContact(result.Assigned),
		NearestAmbulances: CandidatesToNearestResponses(result.Nearest),
	})
}

// @Summary Assign an ambulance to an incident
// @Description Manually assign an ambulance to an incident. A previously assigned different ambulance is released back to available.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignRequest true "Assignment request"
// @Success 200 {object} AssignResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 404 {object} map[string]string "Incident or ambulance not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/assign [post]
func (h *Handler) assignAmbulance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "assignAmbulance").WithField("id", id)

	var input AssignRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatchService.Assign(c.Request.Context(), id, input.AmbulanceID)
	if err != nil {
		if errors.Is(err, service.ErrIncidentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		if errors.Is(err, service.ErrAmbulanceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ambulance not found"})
			return
		}
		log.WithError(err).Error("Failed to assign ambulance in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AssignResponse{
		Incident:  ModelToIncidentResponse(result.Incident),
		Ambulance: ModelToAmbulanceContact(result.Ambulance),
		ETA:       result.ETA,
	})
}

// @Summary Resolve an incident
// @Description Resolve an incident and release its assigned ambulance back to available. Safe to call repeatedly.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	incident, err := h.dispatchService.Resolve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrIncidentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to resolve incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get all incidents, newest first.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.dispatchService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.dispatchService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get dispatcher statistics
// @Description Get counts of active incidents and available ambulances.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.dispatchService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		ActiveIncidents:     stats.ActiveIncidents,
		AvailableAmbulances: stats.AvailableAmbulances,
	})
}

// @Summary Get the ambulance fleet
// @Description Get all ambulances with their live status and position.
// @Tags Fleet
// @Accept json
// @Produce json
// @Success 200 {array} AmbulanceResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulances [get]
func (h *Handler) listAmbulances(c *gin.Context) {
	log := h.logger.WithField("method", "listAmbulances")

	ambulances, err := h.fleetService.ListAmbulances(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list ambulances from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAmbulanceResponses(ambulances))
}

// @Summary Register a new ambulance
// @Description Register an ambulance in the fleet. Requires API key.
// @Tags Fleet
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param ambulance body CreateAmbulanceRequest true "Ambulance registration request"
// @Success 201 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulances [post]
func (h *Handler) createAmbulance(c *gin.Context) {
	var input CreateAmbulanceRequest
	log := h.logger.WithField("method", "createAmbulance")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAmbulanceModel(input)
	if err := h.fleetService.RegisterAmbulance(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to register ambulance in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAmbulanceResponse(model))
}

// @Summary Set ambulance status
// @Description Set an ambulance status to available, busy or offline. Requires API key.
// @Tags Fleet
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Ambulance ID"
// @Param status body SetAmbulanceStatusRequest true "Status change request"
// @Success 200 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulances/{id}/status [patch]
func (h *Handler) setAmbulanceStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "setAmbulanceStatus").WithField("id", id)

	var input SetAmbulanceStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ambulance, err := h.fleetService.SetAmbulanceStatus(c.Request.Context(), id, models.AmbulanceStatus(input.Status))
	if err != nil {
		if errors.Is(err, service.ErrAmbulanceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ambulance not found"})
			return
		}
		log.WithError(err).Error("Failed to set ambulance status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToAmbulanceResponse(ambulance))
}

// @Summary Get the hospital directory
// @Description Get all hospitals for map display.
// @Tags Hospitals
// @Accept json
// @Produce json
// @Success 200 {array} HospitalResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals [get]
func (h *Handler) listHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "listHospitals")

	hospitals, err := h.hospitalService.ListHospitals(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list hospitals from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHospitalResponses(hospitals))
}

// @Summary Get all patients
// @Description Get the patient registry.
// @Tags Patients
// @Accept json
// @Produce json
// @Success 200 {array} PatientResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /patients [get]
func (h *Handler) listPatients(c *gin.Context) {
	log := h.logger.WithField("method", "listPatients")

	patients, err := h.patientService.ListPatients(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list patients from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToPatientResponses(patients))
}

// @Summary Get patient by ID
// @Description Get a single patient by ID.
// @Tags Patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} PatientResponse
// @Failure 404 {object} map[string]string "Patient not found"
// @Router /patients/{id} [get]
func (h *Handler) getPatient(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getPatient").WithField("id", id)

	patient, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get patient from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToPatientResponse(patient))
}

// @Summary Get medical records of a patient
// @Description Get the medical records of a patient, newest first.
// @Tags Patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {array} MedicalRecordResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /patients/{id}/records [get]
func (h *Handler) listMedicalRecords(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "listMedicalRecords").WithField("id", id)

	records, err := h.patientService.ListMedicalRecords(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list medical records from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToMedicalRecordResponses(records))
}

// @Summary Create a medical record
// @Description Add a medical record to a patient.
// @Tags Patients
// @Accept json
// @Produce json
// @Param record body CreateMedicalRecordRequest true "Medical record request"
// @Success 201 {object} MedicalRecordResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Patient not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /records [post]
func (h *Handler) createMedicalRecord(c *gin.Context) {
	var input CreateMedicalRecordRequest
	log := h.logger.WithField("method", "createMedicalRecord")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToMedicalRecordModel(input)
	if err := h.patientService.AddMedicalRecord(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		log.WithError(err).Error("Failed to create medical record in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToMedicalRecordResponse(model))
}

// @Summary Request an OTP
// @Description Request a one-time password for a patient by ABHA ID.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RequestOtpRequest true "OTP request"
// @Success 200 {object} RequestOtpResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Patient not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/request-otp [post]
func (h *Handler) requestOtp(c *gin.Context) {
	var input RequestOtpRequest
	log := h.logger.WithField("method", "requestOtp")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.patientService.RequestOtp(c.Request.Context(), input.AbhaID)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found with this ABHA ID"})
			return
		}
		log.WithError(err).Error("Failed to request OTP in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, RequestOtpResponse{
		SessionID: session.ID,
		Message:   "OTP sent successfully",
		Otp:       session.Otp,
	})
}

// @Summary Verify an OTP
// @Description Verify a one-time password and return the patient.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyOtpRequest true "OTP verification request"
// @Success 200 {object} VerifyOtpResponse
// @Failure 400 {object} map[string]string "Invalid request body, expired or wrong OTP"
// @Failure 404 {object} map[string]string "Session or patient not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/verify-otp [post]
func (h *Handler) verifyOtp(c *gin.Context) {
	var input VerifyOtpRequest
	log := h.logger.WithField("method", "verifyOtp")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patientService.VerifyOtp(c.Request.Context(), input.SessionID, input.Otp)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOtpSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, service.ErrOtpExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired"})
		case errors.Is(err, service.ErrOtpInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid OTP"})
		case errors.Is(err, service.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		default:
			log.WithError(err).Error("Failed to verify OTP in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, VerifyOtpResponse{
		Message: "OTP verified successfully",
		Patient: ModelToPatientResponse(patient),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dispatchService service.DispatchService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(dispatchService service.DispatchService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dispatchService: dispatchService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create an emergency request
// @Description Create a new emergency rescue request and broadcast it to candidate hospitals.
// @Tags Emergency
// @Accept json
// @Produce json
// @Param request body CreateEmergencyRequest true "Emergency request creation"
// @Success 201 {object} CreateEmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]any "User already has an active request"
// @Failure 503 {object} map[string]string "No hospitals configured"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/requests [post]
func (h *Handler) createRequest(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.logger.WithField("method", "createRequest")

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

	result, err := h.dispatchService.CreateRequest(c.Request.Context(), input.UserID, service.CreateRequestInput{
		InjuryDescription:    input.InjuryDescription,
		InjuryPhotoData:      input.InjuryPhotoData,
		MedicalHistoryQRCode: input.MedicalHistoryQRCode,
		MedicalHistoryToken:  input.MedicalHistoryToken,
		Latitude:             input.UserLatitude,
		Longitude:            input.UserLongitude,
		Priority:             input.Priority,
	})
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreateResultToResponse(result))
}

// @Summary Respond to an emergency request
// @Description Accept or reject an emergency request on behalf of a hospital. First acceptance wins. Requires API key.
// @Tags Hospital
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param response body HospitalRespondRequest true "Hospital response"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Request already processed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospital/respond [post]
func (h *Handler) respondToRequest(c *gin.Context) {
	var input HospitalRespondRequest
	log := h.logger.WithField("method", "respondToRequest")

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

	err := h.dispatchService.RespondToRequest(c.Request.Context(), service.HospitalResponseInput{
		RequestID:                    input.RequestID,
		HospitalID:                   input.HospitalID,
		IsAccepted:                   input.IsAccepted,
		ResponseMessage:              input.ResponseMessage,
		EstimatedResponseTimeMinutes: input.EstimatedResponseTimeMinutes,
		AmbulanceAvailable:           input.AmbulanceAvailable,
	})
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update patient location
// @Description Update the patient location of an open emergency request.
// @Tags Emergency
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param location body UpdateLocationRequest true "New location"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request ID, body or coordinates"
// @Failure 404 {object} map[string]string "Request not found or already closed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/requests/{id}/location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("request_id", requestID)

	var input UpdateLocationRequest
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

	var at time.Time
	if input.Timestamp != nil {
		at = *input.Timestamp
	}
	if err := h.dispatchService.UpdateLocation(c.Request.Context(), requestID, *input.Latitude, *input.Longitude, at); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Complete an emergency request
// @Description Mark an emergency request as completed. Only the owning user may complete it.
// @Tags Emergency
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body CompleteRequestRequest true "Owner confirmation"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request ID or body"
// @Failure 404 {object} map[string]string "Request not found or not owned by user"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/requests/{id}/complete [post]
func (h *Handler) completeRequest(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "completeRequest").WithField("request_id", requestID)

	var input CompleteRequestRequest
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

	if err := h.dispatchService.CompleteRequest(c.Request.Context(), requestID, input.UserID); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get request status
// @Description Get the authoritative status of an emergency request. Notifications are hints; this endpoint is ground truth.
// @Tags Emergency
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} RequestStatusResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/requests/{id}/status [get]
func (h *Handler) getRequestStatus(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "getRequestStatus").WithField("request_id", requestID)

	status, err := h.dispatchService.GetRequestStatus(c.Request.Context(), requestID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatusToResponse(status))
}

// @Summary Get open requests visible to a hospital
// @Description List open emergency requests visible to the hospital: within the radius or explicitly targeted, excluding requests it rejected. Requires API key.
// @Tags Hospital
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Hospital ID"
// @Param radius_km query number false "Visibility radius in km"
// @Success 200 {array} HospitalViewItemResponse
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospital/{id}/requests [get]
func (h *Handler) getHospitalView(c *gin.Context) {
	hospitalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hospital ID"})
		return
	}
	log := h.logger.WithField("method", "getHospitalView").WithField("hospital_id", hospitalID)

	radiusKm, _ := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)

	items, err := h.dispatchService.GetHospitalView(c.Request.Context(), hospitalID, radiusKm)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewItemsToResponses(items))
}

// @Summary Get full request details
// @Description Get full details of a pending request, including the medical snapshot, for a hospital's pre-accept review. Requires API key.
// @Tags Hospital
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Hospital ID"
// @Param requestId path int true "Request ID"
// @Success 200 {object} RequestDetailsResponse
// @Failure 400 {object} map[string]string "Invalid hospital or request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request is not pending or does not exist"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospital/{id}/requests/{requestId} [get]
func (h *Handler) getRequestDetails(c *gin.Context) {
	hospitalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hospital ID"})
		return
	}
	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "getRequestDetails").
		WithField("hospital_id", hospitalID).
		WithField("request_id", requestID)

	details, err := h.dispatchService.GetRequestDetails(c.Request.Context(), requestID, hospitalID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DetailsToResponse(details))
}

// @Summary Get dispatch statistics
// @Description Get dispatch counters for the configured time window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.dispatchService.GetStats(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		WindowMinutes:    stats.WindowMinutes,
		CreatedCount:     stats.CreatedCount,
		AcceptedCount:    stats.AcceptedCount,
		OpenPendingCount: stats.OpenPendingCount,
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

// respondServiceError отображает таксономию ошибок сервиса на HTTP статусы:
// валидация - 400, конфликт - 409, не найдено - 404, конфигурация - 503, остальное - 500
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var existing *service.ExistingActiveRequestError
	switch {
	case errors.As(err, &existing):
		log.WithField("existing_request_id", existing.RequestID).Warn("User already has an active request")
		c.JSON(http.StatusConflict, gin.H{
			"error":               "user already has an active request",
			"existing_request_id": existing.RequestID,
		})
	case errors.Is(err, service.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": "request already processed"})
	case errors.Is(err, service.ErrNoHospitalsConfigured):
		log.WithError(err).Error("No hospitals configured for dispatch")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no hospitals configured"})
	case errors.Is(err, service.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
	case errors.Is(err, service.ErrHospitalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "hospital not found"})
	case service.IsValidationError(err):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

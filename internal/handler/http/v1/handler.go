package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/snaktox/internal/config"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/service"
	"github.com/shenikar/snaktox/internal/sms"
	"github.com/shenikar/snaktox/pkg/e"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
)

const (
	maxImageSize      = 10 << 20
	limiterVisitorTTL = 10 * time.Minute
)

var supportedRegions = []string{"East Africa", "West Africa", "Southern Africa", "Central Africa"}

type Handler struct {
	emergencyService      service.EmergencyService
	identificationService service.IdentificationService
	locator               service.HospitalFinder
	logger                *logrus.Logger
	validate              *validator.Validate
	cfg                   *config.Config
	emergencyLimiter      *RateLimiter
	identifyLimiter       *RateLimiter
	now                   func() time.Time
}

func NewHandler(
	emergencyService service.EmergencyService,
	identificationService service.IdentificationService,
	locator service.HospitalFinder,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		emergencyService:      emergencyService,
		identificationService: identificationService,
		locator:               locator,
		logger:                logger,
		validate:              validator.New(),
		cfg:                   cfg,
		emergencyLimiter:      NewRateLimiter(cfg.EmergencyRateLimit, cfg.EmergencyRateBurst, limiterVisitorTTL, logger),
		identifyLimiter:       NewRateLimiter(cfg.IdentifyRateLimit, cfg.IdentifyRateBurst, limiterVisitorTTL, logger),
		now:                   time.Now,
	}
}

// respondError переводит ошибку сервиса в HTTP-статус по таксономии pkg/e
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, fallback string) {
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": fallback + ": not found"})
	case errors.Is(err, e.ErrConflict):
		log.WithError(err).Warn("Conflicting request")
		c.JSON(http.StatusConflict, gin.H{"error": fallback + ": already exists"})
	case errors.Is(err, e.ErrForbidden):
		log.WithError(err).Warn("Access denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, e.ErrDeadline):
		log.WithError(err).Error("Request timed out")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report a snakebite emergency
// @Description Persist an emergency and alert the nearest verified hospitals with antivenom. Alerting is best-effort and reported separately.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param emergency body CreateEmergencyRequest true "Emergency report"
// @Success 201 {object} CreateEmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Snake species not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	principal, _ := principalFrom(c)
	log := h.logger.WithField("method", "createEmergency").WithField("user_id", principal.UserID)

	var input CreateEmergencyRequest
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

	created, err := h.emergencyService.CreateEmergency(c.Request.Context(), DTOToEmergencyInput(input, h.now().UTC()), principal.UserID)
	if err != nil {
		h.respondError(c, log, err, "snake species")
		return
	}
	c.JSON(http.StatusCreated, ModelToCreateEmergencyResponse(created))
}

// @Summary Get emergency by ID
// @Description Available to the reporter and to moderators/admins.
// @Tags Emergencies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Emergency ID"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id} [get]
func (h *Handler) getEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	principal, _ := principalFrom(c)
	log := h.logger.WithField("method", "getEmergency").WithField("id", id)

	emergency, err := h.emergencyService.GetEmergency(c.Request.Context(), id, principal)
	if err != nil {
		h.respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}

// @Summary Update emergency status
// @Description Change the status of an emergency. RESOLVED records the resolution time.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Emergency ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID or request body"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id}/status [put]
func (h *Handler) updateEmergencyStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	principal, _ := principalFrom(c)
	log := h.logger.WithField("method", "updateEmergencyStatus").WithField("id", id)

	var input UpdateStatusRequest
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

	emergency, err := h.emergencyService.UpdateStatus(c.Request.Context(), id, models.EmergencyStatus(input.Status), input.Notes, principal)
	if err != nil {
		h.respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}

// @Summary Assign a hospital to an emergency
// @Description Manually assign a hospital. No SMS is sent. Moderators and admins only.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Emergency ID"
// @Param hospital body AssignHospitalRequest true "Hospital to assign"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID or request body"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "Emergency or hospital not found"
// @Failure 409 {object} map[string]string "Hospital already assigned"
// @Router /emergencies/{id}/assign-hospital [post]
func (h *Handler) assignHospital(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "assignHospital").WithField("id", id)

	var input AssignHospitalRequest
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

	emergency, err := h.emergencyService.AssignHospital(c.Request.Context(), id, uuid.MustParse(input.HospitalID))
	if err != nil {
		h.respondError(c, log, err, "hospital assignment")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}

// @Summary Find nearest hospitals
// @Description Verified, active hospitals with antivenom in stock, ordered by distance.
// @Tags Hospitals
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param max_distance query number false "Search radius in meters" default(50000)
// @Param limit query int false "Maximum number of hospitals" default(10)
// @Success 200 {object} NearestHospitalsResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/nearest [get]
func (h *Handler) nearestHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "nearestHospitals")

	var query NearestHospitalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required and must be in range"})
		return
	}

	maxDistance := query.MaxDistance
	if maxDistance == 0 {
		maxDistance = service.DefaultDispatchRadiusMeters
	}
	origin := models.Coordinate{Longitude: *query.Longitude, Latitude: *query.Latitude}

	nearby, err := h.locator.FindNearby(c.Request.Context(), origin, maxDistance, query.Limit)
	if err != nil {
		h.respondError(c, log, err, "hospitals")
		return
	}

	c.JSON(http.StatusOK, NearestHospitalsResponse{
		Hospitals:      ModelsToNearbyHospitalResponses(nearby),
		Count:          len(nearby),
		SearchLocation: SearchPoint{Latitude: origin.Latitude, Longitude: origin.Longitude},
		MaxDistance:    maxDistance,
	})
}

// @Summary Identify a snake
// @Description Identify by multipart image upload (field "image", optional "region") or by JSON characteristics. Exactly one of them is required.
// @Tags Snakes
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body IdentifyRequest false "Characteristics (JSON variant)"
// @Param image formData file false "Snake photo (multipart variant)"
// @Param region formData string false "Region (multipart variant)"
// @Success 200 {object} IdentificationResponse
// @Failure 400 {object} map[string]string "Neither or both inputs provided, or unreadable image"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /snakes/identify [post]
func (h *Handler) identifySnake(c *gin.Context) {
	principal, _ := principalFrom(c)
	log := h.logger.WithField("method", "identifySnake").WithField("user_id", principal.UserID)

	req, err := h.bindIdentifyRequest(c)
	if err != nil {
		h.respondError(c, log, err, "identification")
		return
	}

	result, err := h.identificationService.Identify(c.Request.Context(), principal.UserID, req)
	if err != nil {
		h.respondError(c, log, err, "identification")
		return
	}
	c.JSON(http.StatusOK, ModelToIdentificationResponse(result))
}

func (h *Handler) bindIdentifyRequest(c *gin.Context) (models.IdentifyRequest, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req := models.IdentifyRequest{Region: strings.TrimSpace(c.PostForm("region"))}

		if raw := c.PostForm("characteristics"); raw != "" {
			var traits CharacteristicsRequest
			if err := json.Unmarshal([]byte(raw), &traits); err != nil {
				return req, e.Invalid("characteristics must be a JSON object")
			}
			if err := h.validate.Struct(traits); err != nil {
				return req, e.Invalid(err.Error())
			}
			req.Characteristics = DTOToCharacteristics(&traits)
		}

		file, err := c.FormFile("image")
		switch {
		case err == nil:
			meta, err := readImageMetadata(file)
			if err != nil {
				return req, err
			}
			req.Image = &meta
		case !errors.Is(err, http.ErrMissingFile):
			return req, e.Invalid("could not read uploaded image")
		}
		return req, nil
	}

	var input IdentifyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		return models.IdentifyRequest{}, e.Invalid("invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return models.IdentifyRequest{}, e.Invalid(err.Error())
	}
	req := models.IdentifyRequest{Characteristics: DTOToCharacteristics(input.Characteristics)}
	if input.Location != nil {
		req.Region = strings.TrimSpace(input.Location.Region)
	}
	return req, nil
}

// readImageMetadata читает только заголовок изображения: размеры и формат
func readImageMetadata(fh *multipart.FileHeader) (models.ImageMetadata, error) {
	if fh.Size > maxImageSize {
		return models.ImageMetadata{}, e.Invalid(fmt.Sprintf("image exceeds %d MB limit", maxImageSize>>20))
	}
	f, err := fh.Open()
	if err != nil {
		return models.ImageMetadata{}, e.Invalid("could not read uploaded image")
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return models.ImageMetadata{}, e.Invalid("unsupported or corrupt image")
	}
	return models.ImageMetadata{Width: cfg.Width, Height: cfg.Height, Format: format, Size: fh.Size}, nil
}

// @Summary Identification history
// @Description The caller's most recent identifications, newest first.
// @Tags Snakes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of records" default(50)
// @Success 200 {object} IdentificationHistoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /snakes/identification-history [get]
func (h *Handler) identificationHistory(c *gin.Context) {
	principal, _ := principalFrom(c)
	log := h.logger.WithField("method", "identificationHistory").WithField("user_id", principal.UserID)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultHistoryLimit)))

	records, err := h.identificationService.History(c.Request.Context(), principal.UserID, limit)
	if err != nil {
		h.respondError(c, log, err, "identification history")
		return
	}
	c.JSON(http.StatusOK, IdentificationHistoryResponse{
		TotalIdentifications:  len(records),
		RecentIdentifications: ModelsToIdentificationResponses(records),
	})
}

// @Summary Identification service status
// @Tags Snakes
// @Produce json
// @Success 200 {object} ServiceStatusResponse
// @Router /snakes/service-status [get]
func (h *Handler) serviceStatus(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceStatusResponse{
		IsReady:     true,
		ServiceType: "enhanced_snake_identification",
		Version:     service.ServiceVersion,
		Capabilities: []string{
			"image_metadata_analysis",
			"characteristics_based_matching",
			"regional_distribution_filtering",
			"multi_feature_scoring",
		},
		Status:           "OPERATIONAL",
		SupportedRegions: supportedRegions,
	})
}

// @Summary SMS channel status
// @Description Whether alerts are delivered through Twilio or simulated.
// @Tags SMS
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SMSStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sms/status [get]
func (h *Handler) smsStatus(c *gin.Context) {
	status := h.emergencyService.ChannelStatus()
	c.JSON(http.StatusOK, SMSStatusResponse{ChannelStatus: status, Instructions: sms.Instructions(status)})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

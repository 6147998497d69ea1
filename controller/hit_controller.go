package controller

import (
	"errors"
	"net/http"

	"hitbadge-backend/badge"
	"hitbadge-backend/models"
	"hitbadge-backend/services"
	"hitbadge-backend/utils"
	"hitbadge-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// noCacheHeader tells clients and proxies to never cache the badge so
// every embed renders the live count.
const noCacheHeader = "no-cache, no-store, must-revalidate, max-age=0"

type HitController struct {
	counterService services.CounterServiceInterface
	userService    services.UserServiceInterface
	logger         logger.Logger
}

func NewHitController(counterService services.CounterServiceInterface, userService services.UserServiceInterface, log logger.Logger) *HitController {
	return &HitController{
		counterService: counterService,
		userService:    userService,
		logger:         log,
	}
}

// Hit handles GET /hc/:user/:pageId
// @Summary Record a visit and render the badge
// @Description Increments the hit counter for (user, pageId) and returns the SVG badge
// @Tags Counter
// @Produce image/svg+xml
// @Param user path string true "Registered user (alphanumeric, max 10)"
// @Param pageId path string true "Page identifier (letters, digits, - and _, max 50)"
// @Param noCount query bool false "Render without incrementing"
// @Param isKmbFormat query bool false "Abbreviate counts with K/M/B (default true)"
// @Param iconBackgroundColorCode query string false "Icon background color"
// @Param eyeColorCode query string false "Icon color"
// @Param textColorCode query string false "Text color"
// @Param textBackgroundColorCode query string false "Text background color"
// @Success 200 {string} string "SVG badge"
// @Failure 400 {object} models.APIResponse "Invalid user or page identifier"
// @Failure 401 {object} models.APIResponse "User not registered or blocked"
// @Failure 503 {object} models.APIResponse "Counter guard queue full"
// @Failure 500 {object} models.APIResponse "Storage failure"
// @Router /hc/{user}/{pageId} [get]
func (h *HitController) Hit(c *gin.Context) {
	user := utils.NormalizeIdentifier(c.Param("user"))
	pageID := utils.NormalizeIdentifier(c.Param("pageId"))

	h.logger.Infof("Request %s from %s for record %s", c.Request.Method, user, pageID)

	if err := utils.ValidateUser(user); err != nil {
		h.badRequest(c, "user", err)
		return
	}
	if err := utils.ValidatePageID(pageID); err != nil {
		h.badRequest(c, "pageId", err)
		return
	}

	allowed, err := h.userService.IsAllowed(user)
	if err != nil {
		h.serverError(c, user, pageID, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "User is not registered or is blocked",
		})
		return
	}

	opts := models.DefaultBadgeOptions()
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.badRequest(c, "options", err)
		return
	}

	record, err := h.counterService.RecordVisit(user, pageID, opts.NoCount)
	if err != nil {
		if errors.Is(err, services.ErrServerBusy) {
			c.JSON(http.StatusServiceUnavailable, models.APIResponse{
				Status:  "error",
				Code:    http.StatusServiceUnavailable,
				Message: "Too many concurrent requests, try again",
			})
			return
		}
		h.serverError(c, user, pageID, err)
		return
	}

	c.Header("Cache-Control", noCacheHeader)
	c.Data(http.StatusOK, badge.ContentType, []byte(badge.Render(record, opts)))
}

// Register handles POST /hc/:user
// @Summary Register a user
// @Description Adds the user to the allow-list so its counters can be served
// @Tags Counter
// @Produce json
// @Param user path string true "User to register (alphanumeric, max 10)"
// @Success 200 {object} models.APIResponse "User registered"
// @Failure 400 {object} models.APIResponse "Invalid user"
// @Failure 409 {object} models.APIResponse "User already registered"
// @Failure 500 {object} models.APIResponse "Storage failure"
// @Router /hc/{user} [post]
func (h *HitController) Register(c *gin.Context) {
	user := utils.NormalizeIdentifier(c.Param("user"))

	h.logger.Infof("Attempting to register %s", user)

	if err := utils.ValidateUser(user); err != nil {
		h.badRequest(c, "user", err)
		return
	}

	created, err := h.userService.Register(user)
	if err != nil {
		h.serverError(c, user, "", err)
		return
	}

	if !created {
		c.JSON(http.StatusConflict, models.APIResponse{
			Status:  "error",
			Code:    http.StatusConflict,
			Message: "User is already registered",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "User registered successfully",
	})
}

func (h *HitController) badRequest(c *gin.Context, field string, err error) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		Error: &models.APIError{
			Type:    "ValidationError",
			Field:   field,
			Details: err.Error(),
		},
	})
}

func (h *HitController) serverError(c *gin.Context, user, pageID string, err error) {
	h.logger.WithFields(map[string]interface{}{
		"user":   user,
		"page":   pageID,
		"method": c.Request.Method,
	}).Errorf("Error processing request: %v", err)

	c.JSON(http.StatusInternalServerError, models.APIResponse{
		Status:  "error",
		Code:    http.StatusInternalServerError,
		Message: "Failed to process request",
		Error: &models.APIError{
			Type:    "DatabaseError",
			Details: err.Error(),
		},
	})
}

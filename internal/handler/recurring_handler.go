package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billkit/internal/domain"
	"billkit/internal/port"
	"billkit/internal/service"
)

// RecurringHandler handles recurring profile endpoints.
type RecurringHandler struct {
	recurringService service.RecurringService
	clock            port.Clock
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService service.RecurringService, clock port.Clock) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService, clock: clock}
}

// Create handles POST /api/v1/recurring-profiles
// @Summary Create a recurring profile
// @Description Store an invoice template that generates invoices on a daily, weekly, monthly or yearly schedule
// @Tags recurring-profiles
// @Accept json
// @Produce json
// @Param request body CreateProfileRequest true "Profile details"
// @Success 201 {object} Response{data=domain.RecurringProfile} "Profile created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Router /recurring-profiles [post]
func (h *RecurringHandler) Create(c *gin.Context) {
	var input service.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.recurringService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, p)
}

// List handles GET /api/v1/recurring-profiles
// @Summary List recurring profiles
// @Tags recurring-profiles
// @Produce json
// @Param status query string false "Filter by status (active, paused, completed)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.RecurringProfile,meta=PagMeta} "List of profiles"
// @Router /recurring-profiles [get]
func (h *RecurringHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	profiles, total, err := h.recurringService.List(c.Request.Context(),
		domain.ProfileStatus(c.Query("status")), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, profiles, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/recurring-profiles/:id
// @Summary Get recurring profile by ID
// @Tags recurring-profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} Response{data=domain.RecurringProfile} "Profile details"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /recurring-profiles/{id} [get]
func (h *RecurringHandler) GetByID(c *gin.Context) {
	h.withProfileID(c, h.recurringService.GetByID)
}

// Generations handles GET /api/v1/recurring-profiles/:id/generations
// @Summary List generated invoices of a profile
// @Description Returns the generation log: one entry per generation date with the invoice it produced
// @Tags recurring-profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} Response{data=[]domain.GenerationLogEntry} "Generation log"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /recurring-profiles/{id}/generations [get]
func (h *RecurringHandler) Generations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid profile ID")
		return
	}

	entries, err := h.recurringService.Generations(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}

// Pause handles POST /api/v1/recurring-profiles/:id/pause
// @Summary Pause a recurring profile
// @Tags recurring-profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} Response{data=domain.RecurringProfile} "Profile paused"
// @Failure 422 {object} ErrorResponseBody "Transition not allowed"
// @Router /recurring-profiles/{id}/pause [post]
func (h *RecurringHandler) Pause(c *gin.Context) {
	h.withProfileID(c, h.recurringService.Pause)
}

// Resume handles POST /api/v1/recurring-profiles/:id/resume
// @Summary Resume a paused recurring profile
// @Tags recurring-profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} Response{data=domain.RecurringProfile} "Profile resumed"
// @Failure 422 {object} ErrorResponseBody "Transition not allowed"
// @Router /recurring-profiles/{id}/resume [post]
func (h *RecurringHandler) Resume(c *gin.Context) {
	h.withProfileID(c, h.recurringService.Resume)
}

// Stop handles POST /api/v1/recurring-profiles/:id/stop
// @Summary Stop a recurring profile permanently
// @Tags recurring-profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} Response{data=domain.RecurringProfile} "Profile completed"
// @Router /recurring-profiles/{id}/stop [post]
func (h *RecurringHandler) Stop(c *gin.Context) {
	h.withProfileID(c, h.recurringService.Stop)
}

// Tick handles POST /api/v1/recurring-profiles/:id/tick
// @Summary Run one scheduler step
// @Description Generate the next invoice if the profile is due as of the given date (default today)
// @Tags recurring-profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param as_of query string false "Evaluation date (YYYY-MM-DD)"
// @Success 200 {object} Response{data=service.TickOutcome} "Tick outcome"
// @Failure 400 {object} ErrorResponseBody "Invalid date"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /recurring-profiles/{id}/tick [post]
func (h *RecurringHandler) Tick(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid profile ID")
		return
	}

	asOf := h.clock.Now()
	if raw := c.Query("as_of"); raw != "" {
		if asOf, err = time.Parse("2006-01-02", raw); err != nil {
			HandleError(c, domain.ErrInvalidDate)
			return
		}
	}

	out, err := h.recurringService.Tick(c.Request.Context(), id, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

func (h *RecurringHandler) withProfileID(c *gin.Context, fn func(context.Context, uuid.UUID) (*domain.RecurringProfile, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid profile ID")
		return
	}

	p, err := fn(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, p)
}

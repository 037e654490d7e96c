package event

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-registration-backend/internal/apperror"
	"github.com/sharath018/event-registration-backend/internal/validation"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// pathID reads the :id path parameter. Anything but a positive integer gets
// a 404 naming resource.
func pathID(c *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		apperror.RespondInvalidID(c, resource)
		return 0, false
	}
	return uint(id), true
}

// ===========================
// 📄 GET /events
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {array} Event
// @Failure 500 {object} apperror.Response
// @Router /api/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Service.ListEvents(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// 🎯 POST /events
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event"
// @Success 201 {object} Event
// @Failure 400 {object} apperror.Response
// @Failure 500 {object} apperror.Response
// @Router /api/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	e, err := h.Service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// ===========================
// 🔍 GET /events/:id
// @Summary Get an event with its participants
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} Detail
// @Failure 404 {object} apperror.Response
// @Router /api/events/{id} [get]
func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := pathID(c, "Event")
	if !ok {
		return
	}

	detail, err := h.Service.GetEvent(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ===========================
// 🛠 PUT /events/:id
// @Summary Update an event
// @Description Partial update; only the supplied fields change.
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} Event
// @Failure 400 {object} apperror.Response
// @Failure 404 {object} apperror.Response
// @Failure 500 {object} apperror.Response
// @Router /api/events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c, "Event")
	if !ok {
		return
	}

	var req UpdateEventRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	e, err := h.Service.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// ===========================
// ❌ DELETE /events/:id
// @Summary Delete an event and its participants
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} apperror.Response
// @Failure 404 {object} apperror.Response
// @Failure 500 {object} apperror.Response
// @Router /api/events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c, "Event")
	if !ok {
		return
	}

	if err := h.Service.DeleteEvent(c.Request.Context(), id); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

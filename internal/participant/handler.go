package participant

import (
	"fmt"
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
// 📄 GET /participants
// @Summary List participants
// @Tags Participants
// @Produce json
// @Success 200 {array} Participant
// @Failure 500 {object} apperror.Response
// @Router /api/participants [get]
func (h *Handler) ListParticipants(c *gin.Context) {
	participants, err := h.Service.ListParticipants(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// ===========================
// 🎯 POST /participants
// @Summary Register a participant
// @Description Registers a participant for an event if the event has a free seat
// @Tags Participants
// @Accept json
// @Produce json
// @Param participant body CreateParticipantRequest true "Participant"
// @Success 201 {object} Participant
// @Failure 400 {object} apperror.Response
// @Failure 404 {object} apperror.Response
// @Failure 500 {object} apperror.Response
// @Router /api/participants [post]
func (h *Handler) CreateParticipant(c *gin.Context) {
	var req CreateParticipantRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	p, err := h.Service.RegisterParticipant(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ===========================
// 🔍 GET /participants/:id
// @Summary Get a participant
// @Tags Participants
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {object} Participant
// @Failure 404 {object} apperror.Response
// @Router /api/participants/{id} [get]
func (h *Handler) GetParticipant(c *gin.Context) {
	id, ok := pathID(c, "Participant")
	if !ok {
		return
	}

	p, err := h.Service.GetParticipant(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ===========================
// 🛠 PUT /participants/:id
// @Summary Update a participant
// @Description Partial update. Moving to another event re-checks that event's capacity.
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path int true "Participant ID"
// @Param participant body UpdateParticipantRequest true "Fields to change"
// @Success 200 {object} Participant
// @Failure 400 {object} apperror.Response
// @Failure 404 {object} apperror.Response
// @Failure 500 {object} apperror.Response
// @Router /api/participants/{id} [put]
func (h *Handler) UpdateParticipant(c *gin.Context) {
	id, ok := pathID(c, "Participant")
	if !ok {
		return
	}

	var req UpdateParticipantRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	p, err := h.Service.UpdateParticipant(c.Request.Context(), id, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ===========================
// ❌ DELETE /participants/:id
// @Summary Delete a participant
// @Tags Participants
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {object} apperror.Response
// @Failure 404 {object} apperror.Response
// @Failure 500 {object} apperror.Response
// @Router /api/participants/{id} [delete]
func (h *Handler) DeleteParticipant(c *gin.Context) {
	id, ok := pathID(c, "Participant")
	if !ok {
		return
	}

	if err := h.Service.DeleteParticipant(c.Request.Context(), id); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted successfully"})
}

// ===========================
// 📄 GET /events/:id/participants
// @Summary List the participants of an event
// @Tags Participants
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} Participant
// @Failure 404 {object} apperror.Response
// @Router /api/events/{id}/participants [get]
func (h *Handler) ListEventParticipants(c *gin.Context) {
	eventID, ok := pathID(c, "Event")
	if !ok {
		return
	}

	participants, err := h.Service.ListEventParticipants(c.Request.Context(), eventID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// ===========================
// 📤 GET /events/:id/participants/export
// @Summary Download the participant roster of an event
// @Tags Participants
// @Produce octet-stream
// @Param id path int true "Event ID"
// @Param format query string false "csv (default), xlsx or pdf"
// @Success 200 {file} file
// @Failure 400 {object} apperror.Response
// @Failure 404 {object} apperror.Response
// @Router /api/events/{id}/participants/export [get]
func (h *Handler) ExportEventParticipants(c *gin.Context) {
	eventID, ok := pathID(c, "Event")
	if !ok {
		return
	}

	export, err := h.Service.ExportEventParticipants(c.Request.Context(), eventID, c.Query("format"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

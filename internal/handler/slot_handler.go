package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-booking-api/internal/dto"
	"github.com/noah-isme/interview-booking-api/internal/models"
	"github.com/noah-isme/interview-booking-api/pkg/response"
)

type slotService interface {
	CreateSlot(ctx context.Context, interviewerID int64, req dto.CreateSlotRequest) (*models.Slot, error)
	DeleteSlot(ctx context.Context, interviewerID int64, rawSlotID string) error
	AvailableSlots(ctx context.Context, typeName string) ([]models.AvailableSlot, error)
	MySlots(ctx context.Context, interviewerID int64) ([]models.InterviewerSlot, error)
	InterviewTypes(ctx context.Context) ([]models.InterviewType, error)
	ExportMySlots(ctx context.Context, interviewerID int64, format string) (*dto.ExportFile, error)
}

// SlotHandler exposes availability slot endpoints.
type SlotHandler struct {
	service slotService
}

// NewSlotHandler creates a new handler.
func NewSlotHandler(svc slotService) *SlotHandler {
	return &SlotHandler{service: svc}
}

// Types godoc
// @Summary List interview types
// @Tags Slots
// @Produce json
// @Success 200 {object} map[string][]models.InterviewType
// @Router /slots/types [get]
func (h *SlotHandler) Types(c *gin.Context) {
	types, err := h.service.InterviewTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if types == nil {
		types = []models.InterviewType{}
	}
	response.JSON(c, http.StatusOK, gin.H{"types": types})
}

// Available godoc
// @Summary List open slots of a type
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Param type query string true "Interview type name"
// @Success 200 {object} map[string][]models.AvailableSlot
// @Failure 400 {object} errors.Error
// @Router /slots/available [get]
func (h *SlotHandler) Available(c *gin.Context) {
	slots, err := h.service.AvailableSlots(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if slots == nil {
		slots = []models.AvailableSlot{}
	}
	response.JSON(c, http.StatusOK, gin.H{"slots": slots})
}

// Mine godoc
// @Summary List the caller's slots with bookings
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.InterviewerSlot
// @Router /slots [get]
func (h *SlotHandler) Mine(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	slots, err := h.service.MySlots(c.Request.Context(), claims.InterviewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if slots == nil {
		slots = []models.InterviewerSlot{}
	}
	response.JSON(c, http.StatusOK, gin.H{"slots": slots})
}

// Create godoc
// @Summary Create an availability slot
// @Tags Slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateSlotRequest true "Slot window"
// @Success 201 {object} dto.CreateSlotResponse
// @Failure 400 {object} errors.Error
// @Router /slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	var req dto.CreateSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	slot, err := h.service.CreateSlot(c.Request.Context(), claims.InterviewerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.CreateSlotResponse{Message: "Slot created", Slot: *slot})
}

// Delete godoc
// @Summary Delete an unbooked slot
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSlot(c.Request.Context(), claims.InterviewerID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Slot deleted")
}

// Export godoc
// @Summary Download the caller's slots
// @Tags Slots
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} errors.Error
// @Router /slots/export [get]
func (h *SlotHandler) Export(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	file, err := h.service.ExportMySlots(c.Request.Context(), claims.InterviewerID, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Body)
}

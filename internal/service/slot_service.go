package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/interview-booking-api/internal/dto"
	"github.com/noah-isme/interview-booking-api/internal/models"
	"github.com/noah-isme/interview-booking-api/internal/repository"
	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
	"github.com/noah-isme/interview-booking-api/pkg/export"
)

type slotRepository interface {
	FindSpecialtyType(ctx context.Context, interviewerID int64, typeName string) (int64, error)
	Create(ctx context.Context, slot models.NewSlot) (*models.Slot, error)
	IsBooked(ctx context.Context, slotID, interviewerID int64) (bool, error)
	DeleteUnbooked(ctx context.Context, slotID, interviewerID int64) error
	ListAvailable(ctx context.Context, typeName string) ([]models.AvailableSlot, error)
	ListForInterviewer(ctx context.Context, interviewerID int64) ([]models.InterviewerSlot, error)
}

type interviewTypeRepository interface {
	List(ctx context.Context) ([]models.InterviewType, error)
}

const interviewTypesCacheKey = "interview_types"

var (
	errSlotNotFound = appErrors.Clone(appErrors.ErrNotFound, "Slot not found")
	errSlotBooked   = conflictError("Cannot delete a booked slot. Ask the student to cancel first.")
)

// SlotService manages interviewer availability and what students can see of it.
type SlotService struct {
	slots     slotRepository
	types     interviewTypeRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	typesTTL  time.Duration
	now       func() time.Time
}

// NewSlotService constructs a SlotService. cache and metrics may be nil.
func NewSlotService(slots slotRepository, types interviewTypeRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, typesTTL time.Duration) *SlotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SlotService{
		slots:     slots,
		types:     types,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		typesTTL:  typesTTL,
		now:       time.Now,
	}
}

// CreateSlot validates the window and the caller's specialty, then inserts the slot unless it
// overlaps one of the caller's existing slots.
func (s *SlotService) CreateSlot(ctx context.Context, interviewerID int64, req dto.CreateSlotRequest) (*models.Slot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "start_time, end_time, and interview_type are required")
	}

	start, startErr := parseTimestamp(req.StartTime)
	end, endErr := parseTimestamp(req.EndTime)
	if err := errors.Join(startErr, endErr); err != nil {
		return nil, validationError(err, "Invalid date format")
	}
	if !start.Before(end) {
		return nil, validationError(nil, "End time must be after start time")
	}
	if !start.After(s.now()) {
		return nil, validationError(nil, "Cannot create slots in the past")
	}

	typeID, err := s.slots.FindSpecialtyType(ctx, interviewerID, req.InterviewType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, validationError(nil, "You do not have this specialty or it does not exist")
		}
		return nil, appErrors.Internalf(err, "Failed to create slot")
	}

	slot, err := s.slots.Create(ctx, models.NewSlot{
		InterviewerID:   interviewerID,
		InterviewTypeID: typeID,
		StartTime:       start.UTC(),
		EndTime:         end.UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrSlotOverlap) {
			return nil, conflictError("This time overlaps with an existing slot")
		}
		return nil, appErrors.Internalf(err, "Failed to create slot")
	}
	slot.InterviewType = req.InterviewType
	s.metrics.RecordSlotCreated()

	return slot, nil
}

// DeleteSlot removes an unbooked slot owned by the caller. Slots of other interviewers are
// reported as not found.
func (s *SlotService) DeleteSlot(ctx context.Context, interviewerID int64, rawSlotID string) error {
	slotID, err := strconv.ParseInt(rawSlotID, 10, 64)
	if err != nil || slotID <= 0 {
		return errSlotNotFound
	}

	booked, err := s.slots.IsBooked(ctx, slotID, interviewerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errSlotNotFound
		}
		return appErrors.Internalf(err, "Failed to delete slot")
	}
	if booked {
		return errSlotBooked
	}

	if err := s.slots.DeleteUnbooked(ctx, slotID, interviewerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// booked or removed since the check
			return s.deleteRaceError(ctx, slotID, interviewerID)
		}
		return appErrors.Internalf(err, "Failed to delete slot")
	}
	return nil
}

func (s *SlotService) deleteRaceError(ctx context.Context, slotID, interviewerID int64) error {
	booked, err := s.slots.IsBooked(ctx, slotID, interviewerID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return errSlotNotFound
	case err != nil:
		return appErrors.Internalf(err, "Failed to delete slot")
	case booked:
		return errSlotBooked
	default:
		return appErrors.Internalf(errors.New("slot delete affected no rows"), "Failed to delete slot")
	}
}

// AvailableSlots lists unbooked future slots of the type across interviewers.
func (s *SlotService) AvailableSlots(ctx context.Context, typeName string) ([]models.AvailableSlot, error) {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return nil, validationError(nil, "Interview type is required (e.g., ?type=Technical)")
	}
	slots, err := s.slots.ListAvailable(ctx, typeName)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to get available slots")
	}
	return slots, nil
}

// MySlots lists every slot of the interviewer with its active booking.
func (s *SlotService) MySlots(ctx context.Context, interviewerID int64) ([]models.InterviewerSlot, error) {
	slots, err := s.slots.ListForInterviewer(ctx, interviewerID)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to get slots")
	}
	return slots, nil
}

// InterviewTypes returns the catalog, served from cache when available.
func (s *SlotService) InterviewTypes(ctx context.Context) ([]models.InterviewType, error) {
	var cached []models.InterviewType
	if s.cache.Get(ctx, interviewTypesCacheKey, &cached) {
		return cached, nil
	}

	types, err := s.types.List(ctx)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to get interview types")
	}
	s.cache.Set(ctx, interviewTypesCacheKey, types, s.typesTTL)
	return types, nil
}

var slotExportHeaders = []string{"ID", "Start", "End", "Interview Type", "Booked", "Student", "Student Email"}

// ExportMySlots renders the interviewer's slots as a CSV or PDF attachment.
func (s *SlotService) ExportMySlots(ctx context.Context, interviewerID int64, format string) (*dto.ExportFile, error) {
	exporter, err := export.ForFormat(format)
	if err != nil {
		return nil, validationError(err, "Unsupported export format (use csv or pdf)")
	}

	slots, err := s.MySlots(ctx, interviewerID)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Title:   "Availability slots",
		Headers: slotExportHeaders,
		Rows:    make([]map[string]string, 0, len(slots)),
	}
	for _, slot := range slots {
		row := map[string]string{
			"ID":             strconv.FormatInt(slot.ID, 10),
			"Start":          slot.StartTime.UTC().Format(time.RFC3339),
			"End":            slot.EndTime.UTC().Format(time.RFC3339),
			"Interview Type": slot.InterviewType,
			"Booked":         strconv.FormatBool(slot.IsBooked),
		}
		if slot.Booking != nil {
			row["Student"] = slot.Booking.StudentName
			row["Student Email"] = slot.Booking.StudentEmail
		}
		data.Rows = append(data.Rows, row)
	}

	body, err := exporter.Render(data)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to export slots")
	}
	return &dto.ExportFile{
		Filename:    "slots-" + s.now().UTC().Format("20060102") + "." + exporter.Extension(),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
}

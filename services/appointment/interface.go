// File: services/appointment/interface.go
package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "hospital/database/repository/appointment"
	"hospital/models"
	"hospital/services/slotcache"
	"hospital/utils"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrSlotUnavailable is returned when the requested time is not a free slot.
	ErrSlotUnavailable   = errors.New("requested time is not available")
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)

// AppointmentService books and tracks appointments against generated slots.
type AppointmentService interface {
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error)
	BookAppointment(ctx context.Context, actor models.Actor, req models.BookAppointmentRequest) (*models.BookedAppointment, error)
	CancelAppointment(ctx context.Context, actor models.Actor, id string) (*models.BookedAppointment, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.AppointmentStatus) (*models.BookedAppointment, error)
	GetAppointment(ctx context.Context, actor models.Actor, id string) (*models.BookedAppointment, error)
	ListDoctorAppointments(ctx context.Context, actor models.Actor, doctorID, date string) ([]models.BookedAppointment, error)
	ListPatientAppointments(ctx context.Context, actor models.Actor, patientID string) ([]models.BookedAppointment, error)
	CompletePastAppointments(ctx context.Context) (int64, error)
}

// WindowLookup is the part of the schedule store slot generation reads.
type WindowLookup interface {
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.AvailabilityWindow, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo    appointmentRepo.AppointmentRepository
	Windows WindowLookup
	Locker  utils.Locker
	Cache   slotcache.SlotCache
	Now     func() time.Time
}

func NewDefaultAppointmentService(
	repo appointmentRepo.AppointmentRepository,
	windows WindowLookup,
	locker utils.Locker,
	cache slotcache.SlotCache,
) (*DefaultAppointmentService, error) {
	if repo == nil || windows == nil || locker == nil || cache == nil {
		return nil, fmt.Errorf("appointment service initialization error: one or more dependencies are nil")
	}

	return &DefaultAppointmentService{
		Repo:    repo,
		Windows: windows,
		Locker:  locker,
		Cache:   cache,
		Now:     time.Now,
	}, nil
}

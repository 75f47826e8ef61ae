// File: services/schedule/interface.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "hospital/database/repository/schedule"
	"hospital/models"
	"hospital/services/scheduling"
	"hospital/utils"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	// ErrScheduleInUse is returned when active appointments still fall inside a window.
	ErrScheduleInUse = errors.New("schedule has active appointments")
)

// ScheduleService manages doctor availability windows.
type ScheduleService interface {
	CreateSchedule(ctx context.Context, actor models.Actor, doctorID string, req models.ScheduleRequest) (*models.AvailabilityWindow, error)
	CheckSchedule(ctx context.Context, doctorID, excludeID string, req models.ScheduleRequest) (scheduling.Validation, error)
	UpdateSchedule(ctx context.Context, actor models.Actor, id string, req models.ScheduleUpdateRequest) (*models.AvailabilityWindow, error)
	SetAvailability(ctx context.Context, actor models.Actor, id string, available bool) (*models.AvailabilityWindow, error)
	DeleteSchedule(ctx context.Context, actor models.Actor, id string) error
	GetSchedule(ctx context.Context, id string) (*models.AvailabilityWindow, error)
	ListSchedules(ctx context.Context, doctorID, date string) ([]models.AvailabilityWindow, error)
	ListScheduledDates(ctx context.Context, doctorID, from string) ([]string, error)
}

// AppointmentLookup is the part of the appointment store the schedule service reads.
type AppointmentLookup interface {
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.BookedAppointment, error)
}

// SlotInvalidator drops cached slots for a doctor's day.
type SlotInvalidator interface {
	Invalidate(ctx context.Context, doctorID, date string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo               scheduleRepo.ScheduleRepository
	Appointments       AppointmentLookup
	Locker             utils.Locker
	Slots              SlotInvalidator
	DefaultSlotMinutes int
	Now                func() time.Time
}

func NewDefaultScheduleService(
	repo scheduleRepo.ScheduleRepository,
	appointments AppointmentLookup,
	locker utils.Locker,
	slots SlotInvalidator,
	defaultSlotMinutes int,
) (*DefaultScheduleService, error) {
	if repo == nil || appointments == nil || locker == nil || slots == nil {
		return nil, fmt.Errorf("schedule service initialization error: one or more dependencies are nil")
	}

	return &DefaultScheduleService{
		Repo:               repo,
		Appointments:       appointments,
		Locker:             locker,
		Slots:              slots,
		DefaultSlotMinutes: defaultSlotMinutes,
		Now:                time.Now,
	}, nil
}

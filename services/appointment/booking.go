// File: services/appointment/booking.go
package appointment

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "hospital/database/repository/appointment"
	"hospital/models"
	"hospital/services/scheduling"
	"hospital/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookAppointment reserves a free slot. The doctor's day is locked while slots
// are recomputed from the stores, and the unique active-slot index backs the
// check if the lock is lost.
func (s *DefaultAppointmentService) BookAppointment(ctx context.Context, actor models.Actor, req models.BookAppointmentRequest) (*models.BookedAppointment, error) {
	if !actor.CanManage(req.DoctorID) && !(actor.Role == models.RolePatient && actor.ID == req.PatientID) {
		return nil, utils.ErrForbidden
	}

	day, err := scheduling.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	date := scheduling.FormatDate(day)
	at, err := scheduling.NormalizeClock(req.Time)
	if err != nil {
		return nil, err
	}
	if date < scheduling.FormatDate(s.Now().UTC()) {
		return nil, fmt.Errorf("%w: %s is in the past", ErrSlotUnavailable, date)
	}

	release, err := s.Locker.Acquire(ctx, utils.ScheduleLockKey(req.DoctorID, date))
	if err != nil {
		return nil, err
	}
	defer release()

	slots, err := s.computeSlots(ctx, req.DoctorID, date)
	if err != nil {
		return nil, err
	}
	if !scheduling.HasSlot(slots, at) {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotUnavailable, date, at)
	}

	now := s.Now().UTC()
	appt := &models.BookedAppointment{
		ID:          uuid.New().String(),
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Date:        date,
		Time:        at,
		Reason:      req.Reason,
		Status:      models.StatusPending,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, fmt.Errorf("%w: %s %s", ErrSlotUnavailable, date, at)
		}
		return nil, err
	}

	s.invalidate(ctx, req.DoctorID, date)
	utils.GetLogger().Info("Appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("patientID", appt.PatientID),
		zap.String("date", date),
		zap.String("time", at))
	return appt, nil
}

// CancelAppointment frees the slot. Either party to the appointment may cancel.
func (s *DefaultAppointmentService) CancelAppointment(ctx context.Context, actor models.Actor, id string) (*models.BookedAppointment, error) {
	appt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(*appt) {
		return nil, utils.ErrForbidden
	}
	return s.transition(ctx, appt, models.StatusCancelled)
}

// UpdateStatus moves an appointment along its lifecycle. Only the doctor or an admin may do so.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.AppointmentStatus) (*models.BookedAppointment, error) {
	appt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(appt.DoctorID) {
		return nil, utils.ErrForbidden
	}
	return s.transition(ctx, appt, status)
}

// CompletePastAppointments marks open appointments dated before today as completed.
func (s *DefaultAppointmentService) CompletePastAppointments(ctx context.Context) (int64, error) {
	today := scheduling.FormatDate(s.Now().UTC())
	n, err := s.Repo.CompleteBefore(ctx, today)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		utils.GetLogger().Info("Completed past appointments", zap.Int64("count", n), zap.String("before", today))
	}
	return n, nil
}

func (s *DefaultAppointmentService) transition(ctx context.Context, appt *models.BookedAppointment, next models.AppointmentStatus) (*models.BookedAppointment, error) {
	if !appt.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, appt.Status, next)
	}
	if err := s.Repo.UpdateStatus(ctx, appt.ID, appt.Status, next); err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusChanged) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		return nil, err
	}

	updated := *appt
	updated.Status = next
	updated.Active = next != models.StatusCancelled
	updated.UpdatedAt = s.Now().UTC()

	if next == models.StatusCancelled {
		s.invalidate(ctx, appt.DoctorID, appt.Date)
	}
	utils.GetLogger().Info("Appointment status changed",
		zap.String("appointmentID", appt.ID),
		zap.String("from", string(appt.Status)),
		zap.String("to", string(next)))
	return &updated, nil
}

// File: services/appointment/queries.go
package appointment

import (
	"context"
	"errors"

	appointmentRepo "hospital/database/repository/appointment"
	"hospital/models"
	"hospital/services/scheduling"
	"hospital/utils"
)

func (s *DefaultAppointmentService) GetAppointment(ctx context.Context, actor models.Actor, id string) (*models.BookedAppointment, error) {
	appt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(*appt) {
		return nil, utils.ErrForbidden
	}
	return appt, nil
}

// ListDoctorAppointments returns the doctor's appointments, limited to date when given.
func (s *DefaultAppointmentService) ListDoctorAppointments(ctx context.Context, actor models.Actor, doctorID, date string) ([]models.BookedAppointment, error) {
	if !actor.CanManage(doctorID) {
		return nil, utils.ErrForbidden
	}
	if date == "" {
		return s.Repo.FindByDoctor(ctx, doctorID)
	}
	if _, err := scheduling.ParseDate(date); err != nil {
		return nil, err
	}
	return s.Repo.FindByDoctorAndDate(ctx, doctorID, date)
}

func (s *DefaultAppointmentService) ListPatientAppointments(ctx context.Context, actor models.Actor, patientID string) ([]models.BookedAppointment, error) {
	if actor.Role != models.RoleAdmin && actor.ID != patientID {
		return nil, utils.ErrForbidden
	}
	return s.Repo.FindByPatient(ctx, patientID)
}

func (s *DefaultAppointmentService) load(ctx context.Context, id string) (*models.BookedAppointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return appt, nil
}

var _ AppointmentService = (*DefaultAppointmentService)(nil)

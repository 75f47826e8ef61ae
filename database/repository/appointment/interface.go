// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"hospital/database"
	"hospital/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("appointment not found")
	// ErrSlotTaken is returned when the unique active-slot index rejects an insert.
	ErrSlotTaken = errors.New("an active appointment already holds this slot")
	// ErrStatusChanged is returned when the appointment left the expected status before the update.
	ErrStatusChanged = errors.New("appointment status changed concurrently")
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.BookedAppointment) error
	GetByID(ctx context.Context, id string) (*models.BookedAppointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.BookedAppointment, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.BookedAppointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.BookedAppointment, error)
	UpdateStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error
	CompleteBefore(ctx context.Context, date string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return newMongoAppointmentRepo(database.Database().Collection("appointments"))
}

func newMongoAppointmentRepo(coll *mongo.Collection) *mongoAppointmentRepo {
	return &mongoAppointmentRepo{coll: coll}
}

// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"hospital/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.BookedAppointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := []models.BookedAppointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// FindByDoctor returns all of a doctor's appointments, any status, matched on the exact doctor ID.
func (r *mongoAppointmentRepo) FindByDoctor(ctx context.Context, doctorID string) ([]models.BookedAppointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

func (r *mongoAppointmentRepo) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.BookedAppointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID, "date": date})
}

func (r *mongoAppointmentRepo) FindByPatient(ctx context.Context, patientID string) ([]models.BookedAppointment, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

// CompleteBefore marks pending and confirmed appointments dated before date as completed.
func (r *mongoAppointmentRepo) CompleteBefore(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{
		"date":   bson.M{"$lt": date},
		"status": bson.M{"$in": []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}},
	}
	update := bson.M{
		"$set": bson.M{
			"status":    models.StatusCompleted,
			"updatedAt": time.Now().UTC(),
		},
	}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past appointments: %w", err)
	}
	return res.ModifiedCount, nil
}

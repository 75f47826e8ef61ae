// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts the appointment. Active must already reflect the status.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt *models.BookedAppointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.BookedAppointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.BookedAppointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// UpdateStatus moves the appointment from one status to another. The filter on
// the current status makes concurrent transitions fail instead of overwriting.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{
		"$set": bson.M{
			"status":    to,
			"active":    to != models.StatusCancelled,
			"updatedAt": time.Now().UTC(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrStatusChanged
	}
	return nil
}

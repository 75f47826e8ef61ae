// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoScheduleRepo) Create(ctx context.Context, window *models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, window); err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) Update(ctx context.Context, window *models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"date":                window.Date,
			"startTime":           window.StartTime,
			"endTime":             window.EndTime,
			"slotDurationMinutes": window.SlotDurationMinutes,
			"isAvailable":         window.IsAvailable,
			"updatedAt":           window.UpdatedAt,
		},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": window.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var window models.AvailabilityWindow
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&window)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule %s: %w", id, err)
	}
	return &window, nil
}

// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"hospital/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByDoctorAndDate returns every window (active or not) for a doctor's day, ordered by start time.
func (r *mongoScheduleRepo) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer cursor.Close(ctx)

	windows := []models.AvailabilityWindow{}
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return windows, nil
}

// FindScheduledDates lists the distinct dates on or after from that have an active window.
func (r *mongoScheduleRepo) FindScheduledDates(ctx context.Context, doctorID, from string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"doctorId":    doctorID,
			"isAvailable": true,
			"date":        bson.M{"$gte": from},
		}}},
		{{Key: "$group", Value: bson.M{"_id": "$date"}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate scheduled dates: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Date string `bson:"_id"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}

	dates := make([]string, 0, len(result))
	for _, row := range result {
		dates = append(dates, row.Date)
	}
	return dates, nil
}

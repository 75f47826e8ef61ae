// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"hospital/database"
	"hospital/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("schedule not found")

type ScheduleRepository interface {
	Create(ctx context.Context, window *models.AvailabilityWindow) error
	Update(ctx context.Context, window *models.AvailabilityWindow) error
	DeleteByID(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.AvailabilityWindow, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.AvailabilityWindow, error)
	FindScheduledDates(ctx context.Context, doctorID, from string) ([]string, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return newMongoScheduleRepo(database.Database().Collection("schedules"))
}

func newMongoScheduleRepo(coll *mongo.Collection) *mongoScheduleRepo {
	return &mongoScheduleRepo{coll: coll}
}

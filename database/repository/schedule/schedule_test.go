package scheduleRepo

import (
	"context"
	"testing"

	"hospital/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func windowDoc(id, start, end string) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "doctorId", Value: "doctor-1"},
		{Key: "date", Value: "2025-03-01"},
		{Key: "startTime", Value: start},
		{Key: "endTime", Value: end},
		{Key: "slotDurationMinutes", Value: 30},
		{Key: "isAvailable", Value: true},
	}
}

func TestScheduleRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := newMongoScheduleRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(ctx, &models.AvailabilityWindow{ID: "w1", DoctorID: "doctor-1"})
		require.NoError(mt, err)
	})

	mt.Run("find by doctor and date", func(mt *mtest.T) {
		repo := newMongoScheduleRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.schedules", mtest.FirstBatch,
			windowDoc("w1", "09:00", "12:00"),
			windowDoc("w2", "14:00", "16:00"),
		))

		windows, err := repo.FindByDoctorAndDate(ctx, "doctor-1", "2025-03-01")
		require.NoError(mt, err)
		require.Len(mt, windows, 2)
		assert.Equal(mt, "w1", windows[0].ID)
		assert.Equal(mt, "16:00", windows[1].EndTime)
		assert.True(mt, windows[1].IsAvailable)
	})

	mt.Run("find returns empty slice", func(mt *mtest.T) {
		repo := newMongoScheduleRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.schedules", mtest.FirstBatch))

		windows, err := repo.FindByDoctorAndDate(ctx, "doctor-1", "2025-03-01")
		require.NoError(mt, err)
		assert.NotNil(mt, windows)
		assert.Empty(mt, windows)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := newMongoScheduleRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.schedules", mtest.FirstBatch))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("update unmatched", func(mt *mtest.T) {
		repo := newMongoScheduleRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.Update(ctx, &models.AvailabilityWindow{ID: "missing"})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := newMongoScheduleRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, repo.DeleteByID(ctx, "w1"))
	})

	mt.Run("scheduled dates", func(mt *mtest.T) {
		repo := newMongoScheduleRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.schedules", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "2025-03-01"}},
			bson.D{{Key: "_id", Value: "2025-03-04"}},
		))

		dates, err := repo.FindScheduledDates(ctx, "doctor-1", "2025-03-01")
		require.NoError(mt, err)
		assert.Equal(mt, []string{"2025-03-01", "2025-03-04"}, dates)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := newMongoScheduleRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.EnsureIndexes(ctx))
	})
}

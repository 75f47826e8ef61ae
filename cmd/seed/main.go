// Command seed fills the schedules collection with a week of availability for
// a set of demo doctors, going through the schedule service so every window is
// overlap-checked like an API write.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"hospital/config"
	"hospital/database"
	"hospital/database/repository"
	"hospital/models"
	"hospital/services/schedule"
	"hospital/services/scheduling"
	"hospital/services/slotcache"
	"hospital/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// candidateWindow is a daily availability span in HH:MM.
type candidateWindow struct {
	Start    string
	End      string
	Duration int
}

var dailyWindows = []candidateWindow{
	{Start: "08:00", End: "12:00", Duration: 30},
	{Start: "13:00", End: "17:00", Duration: 20},
	// Overlaps the afternoon block; the service rejects it.
	{Start: "16:00", End: "18:00", Duration: 30},
}

func main() {
	doctors := flag.Int("doctors", 5, "number of demo doctors")
	days := flag.Int("days", 7, "number of days to seed starting today")
	reset := flag.Bool("reset", false, "clear schedules and appointments first")
	flag.Parse()

	config.LoadConfig()
	database.InitDB()
	utils.InitRedis()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *reset {
		db := database.Database()
		for _, name := range []string{"schedules", "appointments"} {
			if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
				log.Fatalf("Failed to clear %s collection: %v", name, err)
			}
		}
	}

	scheduleRepo := repository.NewMongoScheduleRepo()
	if err := scheduleRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	svc, err := schedule.NewDefaultScheduleService(
		scheduleRepo,
		repository.NewMongoAppointmentRepo(),
		utils.NewRedisLocker(utils.GetLockClient(), config.AppConfig.ScheduleLockTTL, config.AppConfig.ScheduleLockWait),
		slotcache.NewRedisSlotCache(utils.GetCacheClient(), config.AppConfig.SlotCacheTTL),
		config.AppConfig.DefaultSlotMinutes,
	)
	if err != nil {
		log.Fatalf("Failed to build schedule service: %v", err)
	}

	seeder := models.Actor{ID: "seed", Role: models.RoleAdmin}
	created, rejected := 0, 0
	today := time.Now()
	for d := 1; d <= *doctors; d++ {
		doctorID := fmt.Sprintf("doctor-%d", d)
		for i := 0; i < *days; i++ {
			date := scheduling.FormatDate(today.AddDate(0, 0, i))
			for _, cw := range dailyWindows {
				_, err := svc.CreateSchedule(ctx, seeder, doctorID, models.ScheduleRequest{
					Date:                date,
					StartTime:           cw.Start,
					EndTime:             cw.End,
					SlotDurationMinutes: cw.Duration,
				})
				if err != nil {
					rejected++
					log.Printf("Skipped %s %s %s-%s: %v", doctorID, date, cw.Start, cw.End, err)
					continue
				}
				created++
			}
		}
	}

	fmt.Printf("Seeded %d windows (%d rejected)\n", created, rejected)
}

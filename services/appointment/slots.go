// File: services/appointment/slots.go
package appointment

import (
	"context"

	"hospital/models"
	"hospital/services/scheduling"
	"hospital/utils"

	"go.uber.org/zap"
)

// GetAvailableSlots returns the doctor's free slots for date, served from the
// slot cache when present. A freshly computed list is cached only if no write
// invalidated the day since the cache was read.
func (s *DefaultAppointmentService) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	day, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, err
	}
	date = scheduling.FormatDate(day)

	logger := utils.GetLogger()
	slots, gen, ok, cacheErr := s.Cache.Get(ctx, doctorID, date)
	if cacheErr != nil {
		logger.Warn("Slot cache read failed", zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(cacheErr))
	} else if ok {
		return slots, nil
	}

	slots, err = s.computeSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	if cacheErr != nil {
		// No generation was read, so a write could resurrect a stale list.
		return slots, nil
	}
	if _, err := s.Cache.Set(ctx, doctorID, date, gen, slots); err != nil {
		logger.Warn("Slot cache write failed", zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
	}
	return slots, nil
}

// computeSlots reads the stores directly, bypassing the cache.
func (s *DefaultAppointmentService) computeSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	windows, err := s.Windows.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	booked, err := s.Repo.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	return scheduling.GenerateSlots(windows, booked, date)
}

func (s *DefaultAppointmentService) invalidate(ctx context.Context, doctorID, date string) {
	if err := s.Cache.Invalidate(ctx, doctorID, date); err != nil {
		utils.GetLogger().Warn("Failed to invalidate slot cache",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
	}
}

// File: services/schedule/crud.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	scheduleRepo "hospital/database/repository/schedule"
	"hospital/models"
	"hospital/services/scheduling"
	"hospital/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSchedule adds a window for doctorID after checking it against the
// doctor's other active windows on the same day.
func (s *DefaultScheduleService) CreateSchedule(ctx context.Context, actor models.Actor, doctorID string, req models.ScheduleRequest) (*models.AvailabilityWindow, error) {
	if !actor.CanManage(doctorID) {
		return nil, utils.ErrForbidden
	}

	now := s.Now().UTC()
	window := models.AvailabilityWindow{
		ID:                  uuid.New().String(),
		DoctorID:            doctorID,
		Date:                req.Date,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SlotDurationMinutes: req.SlotDurationMinutes,
		IsAvailable:         req.IsAvailable == nil || *req.IsAvailable,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.normalize(&window); err != nil {
		return nil, err
	}

	release, err := s.lockDays(ctx, doctorID, window.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.Repo.FindByDoctorAndDate(ctx, doctorID, window.Date)
	if err != nil {
		return nil, err
	}
	if err := scheduling.ValidateWindow(window, existing, ""); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, &window); err != nil {
		return nil, err
	}

	s.invalidate(ctx, doctorID, window.Date)
	utils.GetLogger().Info("Schedule created",
		zap.String("scheduleID", window.ID),
		zap.String("doctorID", doctorID),
		zap.String("date", window.Date),
		zap.String("start", window.StartTime),
		zap.String("end", window.EndTime))
	return &window, nil
}

// CheckSchedule reports whether req could be saved for doctorID without writing
// anything. excludeID names the window being edited, if any. Malformed input is
// reported in the result rather than as an error.
func (s *DefaultScheduleService) CheckSchedule(ctx context.Context, doctorID, excludeID string, req models.ScheduleRequest) (scheduling.Validation, error) {
	candidate := models.AvailabilityWindow{
		DoctorID:    doctorID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
	}
	if err := s.normalize(&candidate); err != nil {
		return scheduling.CheckWindow(candidate, nil, excludeID), nil
	}

	existing, err := s.Repo.FindByDoctorAndDate(ctx, doctorID, candidate.Date)
	if err != nil {
		return scheduling.Validation{}, err
	}
	return scheduling.CheckWindow(candidate, existing, excludeID), nil
}

// UpdateSchedule applies a partial update. The window is re-validated against
// the target day with itself excluded, and the update is refused when it would
// strand active appointments outside the window.
func (s *DefaultScheduleService) UpdateSchedule(ctx context.Context, actor models.Actor, id string, req models.ScheduleUpdateRequest) (*models.AvailabilityWindow, error) {
	current, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		updated.EndTime = *req.EndTime
	}
	if req.SlotDurationMinutes != nil {
		updated.SlotDurationMinutes = *req.SlotDurationMinutes
	}
	if req.IsAvailable != nil {
		updated.IsAvailable = *req.IsAvailable
	}
	if err := s.normalize(&updated); err != nil {
		return nil, err
	}
	updated.UpdatedAt = s.Now().UTC()

	release, err := s.lockDays(ctx, current.DoctorID, current.Date, updated.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.Repo.FindByDoctorAndDate(ctx, updated.DoctorID, updated.Date)
	if err != nil {
		return nil, err
	}
	if err := scheduling.ValidateWindow(updated, existing, id); err != nil {
		return nil, err
	}
	if err := s.ensureCovered(ctx, *current, &updated); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, &updated); err != nil {
		return nil, s.mapRepoErr(err)
	}

	s.invalidate(ctx, current.DoctorID, current.Date)
	if updated.Date != current.Date {
		s.invalidate(ctx, updated.DoctorID, updated.Date)
	}
	return &updated, nil
}

// SetAvailability soft-enables or disables a window. Enabling re-runs the overlap check.
func (s *DefaultScheduleService) SetAvailability(ctx context.Context, actor models.Actor, id string, available bool) (*models.AvailabilityWindow, error) {
	current, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if current.IsAvailable == available {
		return current, nil
	}

	release, err := s.lockDays(ctx, current.DoctorID, current.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	updated := *current
	updated.IsAvailable = available
	updated.UpdatedAt = s.Now().UTC()

	if available {
		existing, err := s.Repo.FindByDoctorAndDate(ctx, updated.DoctorID, updated.Date)
		if err != nil {
			return nil, err
		}
		if err := scheduling.ValidateWindow(updated, existing, id); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.Update(ctx, &updated); err != nil {
		return nil, s.mapRepoErr(err)
	}

	s.invalidate(ctx, updated.DoctorID, updated.Date)
	return &updated, nil
}

// DeleteSchedule removes a window that no active appointment falls inside.
func (s *DefaultScheduleService) DeleteSchedule(ctx context.Context, actor models.Actor, id string) error {
	current, err := s.load(ctx, actor, id)
	if err != nil {
		return err
	}

	release, err := s.lockDays(ctx, current.DoctorID, current.Date)
	if err != nil {
		return err
	}
	defer release()

	if err := s.ensureCovered(ctx, *current, nil); err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return s.mapRepoErr(err)
	}

	s.invalidate(ctx, current.DoctorID, current.Date)
	utils.GetLogger().Info("Schedule deleted", zap.String("scheduleID", id), zap.String("doctorID", current.DoctorID))
	return nil
}

func (s *DefaultScheduleService) GetSchedule(ctx context.Context, id string) (*models.AvailabilityWindow, error) {
	window, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoErr(err)
	}
	return window, nil
}

func (s *DefaultScheduleService) ListSchedules(ctx context.Context, doctorID, date string) ([]models.AvailabilityWindow, error) {
	if _, err := scheduling.ParseDate(date); err != nil {
		return nil, err
	}
	return s.Repo.FindByDoctorAndDate(ctx, doctorID, date)
}

// ListScheduledDates returns the dates from `from` onward (today when empty) with an active window.
func (s *DefaultScheduleService) ListScheduledDates(ctx context.Context, doctorID, from string) ([]string, error) {
	if from == "" {
		from = scheduling.FormatDate(s.Now().UTC())
	} else if _, err := scheduling.ParseDate(from); err != nil {
		return nil, err
	}
	return s.Repo.FindScheduledDates(ctx, doctorID, from)
}

// load fetches a window and checks the actor may manage its doctor.
func (s *DefaultScheduleService) load(ctx context.Context, actor models.Actor, id string) (*models.AvailabilityWindow, error) {
	window, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoErr(err)
	}
	if !actor.CanManage(window.DoctorID) {
		return nil, utils.ErrForbidden
	}
	return window, nil
}

// normalize canonicalizes date and times to YYYY-MM-DD and HH:MM and fills the default slot duration.
func (s *DefaultScheduleService) normalize(w *models.AvailabilityWindow) error {
	day, err := scheduling.ParseDate(w.Date)
	if err != nil {
		return err
	}
	w.Date = scheduling.FormatDate(day)

	rng, err := scheduling.ParseRange(w.StartTime, w.EndTime)
	if err != nil {
		return err
	}
	w.StartTime = rng.Start.String()
	w.EndTime = rng.End.String()

	if w.SlotDurationMinutes <= 0 {
		w.SlotDurationMinutes = s.DefaultSlotMinutes
		if w.SlotDurationMinutes <= 0 {
			w.SlotDurationMinutes = scheduling.DefaultSlotMinutes
		}
	}
	return nil
}

// ensureCovered fails with ErrScheduleInUse when an active appointment inside
// before would no longer start a slot of after. A nil after means the window is removed.
// Disabling a window keeps its appointments, so availability is not considered.
func (s *DefaultScheduleService) ensureCovered(ctx context.Context, before models.AvailabilityWindow, after *models.AvailabilityWindow) error {
	oldRange, err := scheduling.ParseRange(before.StartTime, before.EndTime)
	if err != nil {
		return err
	}
	var newRange scheduling.Range
	var newStep scheduling.Clock
	if after != nil {
		if newRange, err = scheduling.ParseRange(after.StartTime, after.EndTime); err != nil {
			return err
		}
		newStep = scheduling.Clock(after.SlotDurationMinutes)
		if newStep <= 0 {
			newStep = scheduling.DefaultSlotMinutes
		}
	}

	appts, err := s.Appointments.FindByDoctorAndDate(ctx, before.DoctorID, before.Date)
	if err != nil {
		return err
	}
	for _, appt := range appts {
		if appt.Status == models.StatusCancelled {
			continue
		}
		at, err := scheduling.ParseClock(appt.Time)
		if err != nil {
			return err
		}
		if !oldRange.Contains(at) {
			continue
		}
		// Off-grid bookings would sit under a neighbouring generated slot.
		if after == nil || after.Date != before.Date || !newRange.IsSlotStart(at, newStep) {
			return fmt.Errorf("%w: appointment %s at %s", ErrScheduleInUse, appt.ID, appt.Time)
		}
	}
	return nil
}

// lockDays locks each distinct doctor+date in sorted order and returns a single release func.
func (s *DefaultScheduleService) lockDays(ctx context.Context, doctorID string, dates ...string) (func(), error) {
	keys := make([]string, 0, len(dates))
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			keys = append(keys, utils.ScheduleLockKey(doctorID, d))
		}
	}
	sort.Strings(keys)

	releases := make([]func(), 0, len(keys))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
	for _, key := range keys {
		release, err := s.Locker.Acquire(ctx, key)
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}
	return releaseAll, nil
}

func (s *DefaultScheduleService) invalidate(ctx context.Context, doctorID, date string) {
	// Entries still expire after the cache TTL.
	if err := s.Slots.Invalidate(ctx, doctorID, date); err != nil {
		utils.GetLogger().Warn("Failed to invalidate slot cache",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
	}
}

func (s *DefaultScheduleService) mapRepoErr(err error) error {
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return ErrScheduleNotFound
	}
	return err
}

var _ ScheduleService = (*DefaultScheduleService)(nil)


package schedule

import (
	"context"
	"sort"
	"sync"

	scheduleRepo "hospital/database/repository/schedule"
	"hospital/models"
)

type memScheduleRepo struct {
	mu      sync.Mutex
	windows map[string]models.AvailabilityWindow
}

func newMemScheduleRepo(windows ...models.AvailabilityWindow) *memScheduleRepo {
	r := &memScheduleRepo{windows: map[string]models.AvailabilityWindow{}}
	for _, w := range windows {
		r.windows[w.ID] = w
	}
	return r
}

func (r *memScheduleRepo) Create(_ context.Context, w *models.AvailabilityWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[w.ID] = *w
	return nil
}

func (r *memScheduleRepo) Update(_ context.Context, w *models.AvailabilityWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.windows[w.ID]; !ok {
		return scheduleRepo.ErrNotFound
	}
	r.windows[w.ID] = *w
	return nil
}

func (r *memScheduleRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.windows[id]; !ok {
		return scheduleRepo.ErrNotFound
	}
	delete(r.windows, id)
	return nil
}

func (r *memScheduleRepo) GetByID(_ context.Context, id string) (*models.AvailabilityWindow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.windows[id]
	if !ok {
		return nil, scheduleRepo.ErrNotFound
	}
	return &w, nil
}

func (r *memScheduleRepo) FindByDoctorAndDate(_ context.Context, doctorID, date string) ([]models.AvailabilityWindow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.AvailabilityWindow{}
	for _, w := range r.windows {
		if w.DoctorID == doctorID && w.Date == date {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *memScheduleRepo) FindScheduledDates(_ context.Context, doctorID, from string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	dates := []string{}
	for _, w := range r.windows {
		if w.DoctorID == doctorID && w.IsAvailable && w.Date >= from && !seen[w.Date] {
			seen[w.Date] = true
			dates = append(dates, w.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (r *memScheduleRepo) EnsureIndexes(context.Context) error { return nil }

type memAppointments []models.BookedAppointment

func (m memAppointments) FindByDoctorAndDate(_ context.Context, doctorID, date string) ([]models.BookedAppointment, error) {
	out := []models.BookedAppointment{}
	for _, a := range m {
		if a.DoctorID == doctorID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

type recordingLocker struct {
	mu       sync.Mutex
	acquired []string
	released int
}

func (l *recordingLocker) Acquire(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acquired = append(l.acquired, key)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.released++
	}, nil
}

type recordingInvalidator struct {
	keys []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, doctorID, date string) error {
	r.keys = append(r.keys, doctorID+":"+date)
	return nil
}

package appointment

import (
	"context"
	"sync"

	appointmentRepo "hospital/database/repository/appointment"
	"hospital/models"
	"hospital/services/slotcache"
)

type memAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]models.BookedAppointment
	reads int
}

func newMemAppointmentRepo(appts ...models.BookedAppointment) *memAppointmentRepo {
	r := &memAppointmentRepo{appts: map[string]models.BookedAppointment{}}
	for _, a := range appts {
		r.appts[a.ID] = a
	}
	return r
}

// Create mirrors the partial unique index on active doctor/date/time.
func (r *memAppointmentRepo) Create(_ context.Context, appt *models.BookedAppointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.appts {
		if a.Active && appt.Active && a.DoctorID == appt.DoctorID && a.Date == appt.Date && a.Time == appt.Time {
			return appointmentRepo.ErrSlotTaken
		}
	}
	r.appts[appt.ID] = *appt
	return nil
}

func (r *memAppointmentRepo) GetByID(_ context.Context, id string) (*models.BookedAppointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &a, nil
}

func (r *memAppointmentRepo) filter(keep func(models.BookedAppointment) bool) []models.BookedAppointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.BookedAppointment{}
	for _, a := range r.appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (r *memAppointmentRepo) FindByDoctor(_ context.Context, doctorID string) ([]models.BookedAppointment, error) {
	return r.filter(func(a models.BookedAppointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *memAppointmentRepo) FindByDoctorAndDate(_ context.Context, doctorID, date string) ([]models.BookedAppointment, error) {
	r.mu.Lock()
	r.reads++
	r.mu.Unlock()
	return r.filter(func(a models.BookedAppointment) bool { return a.DoctorID == doctorID && a.Date == date }), nil
}

func (r *memAppointmentRepo) FindByPatient(_ context.Context, patientID string) ([]models.BookedAppointment, error) {
	return r.filter(func(a models.BookedAppointment) bool { return a.PatientID == patientID }), nil
}

func (r *memAppointmentRepo) UpdateStatus(_ context.Context, id string, from, to models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok || a.Status != from {
		return appointmentRepo.ErrStatusChanged
	}
	a.Status = to
	a.Active = to != models.StatusCancelled
	r.appts[id] = a
	return nil
}

func (r *memAppointmentRepo) CompleteBefore(_ context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, a := range r.appts {
		if a.Date < date && (a.Status == models.StatusPending || a.Status == models.StatusConfirmed) {
			a.Status = models.StatusCompleted
			r.appts[id] = a
			n++
		}
	}
	return n, nil
}

func (r *memAppointmentRepo) EnsureIndexes(context.Context) error { return nil }

type memWindows []models.AvailabilityWindow

func (m memWindows) FindByDoctorAndDate(_ context.Context, doctorID, date string) ([]models.AvailabilityWindow, error) {
	out := []models.AvailabilityWindow{}
	for _, w := range m {
		if w.DoctorID == doctorID && w.Date == date {
			out = append(out, w)
		}
	}
	return out, nil
}

// interleavingCache runs beforeSet once, between a reader computing slots and
// storing them.
type interleavingCache struct {
	slotcache.SlotCache
	beforeSet func()
}

func (c *interleavingCache) Set(ctx context.Context, doctorID, date string, gen int64, slots []models.Slot) (bool, error) {
	if c.beforeSet != nil {
		run := c.beforeSet
		c.beforeSet = nil
		run()
	}
	return c.SlotCache.Set(ctx, doctorID, date, gen, slots)
}

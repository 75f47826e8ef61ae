package scheduling

import (
	"sort"

	"hospital/models"
)

// DefaultSlotMinutes is used when a window carries no slot duration.
const DefaultSlotMinutes = 30

type slotRange struct {
	start Clock
	end   Clock
}

// GenerateSlots returns the free slots for date, ordered by start time.
//
// Each active window for date is cut into slotDurationMinutes steps; a trailing
// remainder shorter than one step is dropped. Slots whose start matches a
// non-cancelled booking on date are removed, and when windows produce the same
// start time the first one is kept. The inputs are not modified and an empty
// (non-nil) slice is returned when nothing is bookable.
func GenerateSlots(windows []models.AvailabilityWindow, booked []models.BookedAppointment, date string) ([]models.Slot, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}

	excluded := make(map[Clock]struct{}, len(booked))
	for _, appt := range booked {
		if appt.Date != date || appt.Status == models.StatusCancelled {
			continue
		}
		start, err := ParseClock(appt.Time)
		if err != nil {
			return nil, err
		}
		excluded[start] = struct{}{}
	}

	seen := make(map[Clock]struct{})
	var free []slotRange
	for _, w := range windows {
		if w.Date != date || !w.IsAvailable {
			continue
		}
		r, err := ParseRange(w.StartTime, w.EndTime)
		if err != nil {
			return nil, err
		}
		step := Clock(w.SlotDurationMinutes)
		if step <= 0 {
			step = DefaultSlotMinutes
		}
		for start := r.Start; start+step <= r.End; start += step {
			if _, ok := excluded[start]; ok {
				continue
			}
			if _, ok := seen[start]; ok {
				continue
			}
			seen[start] = struct{}{}
			free = append(free, slotRange{start: start, end: start + step})
		}
	}

	sort.SliceStable(free, func(i, j int) bool {
		return free[i].start < free[j].start
	})

	slots := make([]models.Slot, 0, len(free))
	for _, s := range free {
		slots = append(slots, models.Slot{
			Start:   s.start.String(),
			End:     s.end.String(),
			Display: s.start.Format12h() + " - " + s.end.Format12h(),
		})
	}
	return slots, nil
}

// HasSlot reports whether slots contains one starting at start ("HH:MM").
func HasSlot(slots []models.Slot, start string) bool {
	for _, s := range slots {
		if s.Start == start {
			return true
		}
	}
	return false
}

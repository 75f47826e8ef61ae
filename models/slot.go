package models

// Slot is a bookable sub-interval of an availability window. It is derived, never stored.
type Slot struct {
	Start   string `json:"start"`   // "HH:MM"
	End     string `json:"end"`     // Start + slot duration
	Display string `json:"display"` // e.g., "9:00 AM - 9:30 AM"
}

// AvailableSlotsResponse is returned by the slot lookup endpoint.
type AvailableSlotsResponse struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Slots    []Slot `json:"slots"`
	Message  string `json:"message,omitempty"`
}

package models

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// Actor is the authenticated caller, taken from the bearer token.
type Actor struct {
	ID   string
	Role string
}

// CanManage reports whether the actor may act on behalf of the given doctor.
func (a Actor) CanManage(doctorID string) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.Role == RoleDoctor && a.ID != "" && a.ID == doctorID
}

// CanView reports whether the actor may see an appointment.
func (a Actor) CanView(appt BookedAppointment) bool {
	if a.CanManage(appt.DoctorID) {
		return true
	}
	return a.Role == RolePatient && a.ID != "" && a.ID == appt.PatientID
}

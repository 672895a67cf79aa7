package responses

type Appointment struct {
	ID              string      `json:"id"`
	PatientID       string      `json:"patientId"`
	DoctorID        string      `json:"doctorId"`
	AppointmentDate string      `json:"appointmentDate"`
	Status          string      `json:"status"`
	Reason          string      `json:"reason,omitempty"`
	CreatedAt       string      `json:"createdAt"`
	Patient         *PatientRef `json:"patient,omitempty"`
}

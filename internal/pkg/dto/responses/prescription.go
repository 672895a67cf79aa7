package responses

type Prescription struct {
	ID                   string      `json:"id"`
	PatientID            string      `json:"patientId"`
	MedicationName       string      `json:"medicationName"`
	Dosage               string      `json:"dosage"`
	Frequency            string      `json:"frequency"`
	Duration             string      `json:"duration"`
	Status               string      `json:"status"`
	PrescribedDate       string      `json:"prescribedDate"`
	Instructions         string      `json:"instructions,omitempty"`
	DoctorName           string      `json:"doctorName,omitempty"`
	DoctorSpecialization string      `json:"doctorSpecialization,omitempty"`
	CreatedAt            string      `json:"createdAt"`
	Patient              *PatientRef `json:"patient,omitempty"`
}

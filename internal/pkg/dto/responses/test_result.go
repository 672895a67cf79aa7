package responses

type TestResult struct {
	ID        string      `json:"id"`
	PatientID string      `json:"patientId"`
	TestName  string      `json:"testName"`
	TestType  string      `json:"testType"`
	Status    string      `json:"status"`
	TestDate  string      `json:"testDate"`
	CreatedAt string      `json:"createdAt"`
	Patient   *PatientRef `json:"patient,omitempty"`
}

// MedicalRecord is the secondary source a TestResult can be derived from.
type MedicalRecord struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment,omitempty"`
	VisitDate string `json:"visitDate"`
	CreatedAt string `json:"createdAt"`
}

package responses

// Patient may embed billing/prescription/medical-record sub-resources.
// Those act as the secondary data source when a dedicated endpoint is
// missing from the deployment.
type Patient struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email,omitempty"`
	Username       string          `json:"username,omitempty"`
	CreatedAt      string          `json:"createdAt"`
	User           *UserRef        `json:"user,omitempty"`
	Invoices       []Invoice       `json:"invoices,omitempty"`
	Prescriptions  []Prescription  `json:"prescriptions,omitempty"`
	MedicalRecords []MedicalRecord `json:"medicalRecords,omitempty"`
}

// PatientRef is the projection attached to derived records so list views
// can render the owning patient without another fetch.
type PatientRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (p Patient) Ref() *PatientRef {
	return &PatientRef{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
}

package responses

type Doctor struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	Name            string   `json:"name,omitempty"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email,omitempty"`
	Specialization  string   `json:"specialization"`
	PhoneNumber     string   `json:"phoneNumber"`
	LicenseNumber   string   `json:"licenseNumber"`
	YearsExperience int      `json:"yearsExperience"`
	CreatedAt       string   `json:"createdAt"`
	User            *UserRef `json:"user,omitempty"`
}

package requests

type CreateDoctor struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	Specialization  string `json:"specialization" validate:"required"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	LicenseNumber   string `json:"licenseNumber,omitempty"`
	YearsExperience int    `json:"yearsExperience,omitempty"`
}

type UpdateDoctor struct {
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	Specialization  string `json:"specialization,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	LicenseNumber   string `json:"licenseNumber,omitempty"`
	YearsExperience int    `json:"yearsExperience,omitempty"`
}

package requests

type CreateUser struct {
	Username  string `json:"username" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateUser carries only the fields being changed; empty fields are
// forwarded as-is and the upstream decides what an omission means.
type UpdateUser struct {
	Username  string `json:"username,omitempty" validate:"omitempty,min=3"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Role      string `json:"role,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

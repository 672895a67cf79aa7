package responses

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

// UserRef is the embedded account object some deployments nest inside
// doctor/patient records.
type UserRef struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

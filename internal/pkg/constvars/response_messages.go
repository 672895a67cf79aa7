package constvars

const (
	LoginSuccessMessage          = "Signed in successfully"
	SessionRestoredMessage       = "Session restored"
	LogoutSuccessMessage         = "Signed out successfully"
	ChangePasswordSuccessMessage = "Password changed successfully"
	RegisterAdminSuccessMessage  = "Administrator account created"
	FetchSuccessMessage          = "Data fetched successfully"
	CreateSuccessMessage         = "Data created successfully"
	UpdateSuccessMessage         = "Data updated successfully"
	DeleteSuccessMessage         = "Data deleted successfully"

	ResponseUnknown = "unknown"
)

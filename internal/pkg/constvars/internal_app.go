package constvars

const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)

const (
	InvoiceStatusDue       = "DUE"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusPending   = "PENDING"
	InvoiceStatusOverdue   = "OVERDUE"
	InvoiceStatusCancelled = "CANCELLED"

	PrescriptionStatusActive    = "ACTIVE"
	PrescriptionStatusCompleted = "COMPLETED"
	PrescriptionStatusCancelled = "CANCELLED"

	TestResultStatusPending   = "PENDING"
	TestResultStatusCompleted = "COMPLETED"
	TestResultStatusReviewed  = "REVIEWED"

	TestTypeTreatment  = "Treatment"
	TestTypeDiagnostic = "Diagnostic"

	AppointmentStatusScheduled = "SCHEDULED"
	AppointmentStatusCompleted = "COMPLETED"
	AppointmentStatusCancelled = "CANCELLED"
)

const (
	SessionTokenKey = "adminToken"
	SessionUserKey  = "adminUser"
)

const (
	// DefaultListLimit bounds "fetch everything" list calls; filtering and
	// paging happen in memory afterwards.
	DefaultListLimit = 1000

	ItemsPerPage   = 12
	PageWindowSize = 5

	RecentUsersCount    = 5
	ActivityUsersCount  = 3
	ActivityDoctorCount = 2
	ActivityFeedSize    = 6
)

const (
	ParamLimit  = "limit"
	ParamSearch = "search"
	ParamStatus = "status"
	ParamPage   = "page"

	StatusFilterAll = "ALL"
)

const (
	SyntheticEmailDomain = "healthcare.com"
	SystemHealthDefault  = "99.9% Uptime"
)

package constvars

// Upstream HealthApp API endpoints. The response envelope differs per
// endpoint and per deployment; adapters probe the known shapes in order.
const (
	EndpointStaffADLogin   = "/auth/staff-ad-login"
	EndpointLogin          = "/auth/login"
	EndpointRegister       = "/auth/register"
	EndpointChangePassword = "/auth/change-password"

	EndpointUsers            = "/users"
	EndpointUserStats        = "/users/stats"
	EndpointDoctors          = "/doctors"
	EndpointDoctorStats      = "/doctors/stats"
	EndpointPatients         = "/patients"
	EndpointPatientStats     = "/patients/stats"
	EndpointAppointments     = "/appointments"
	EndpointAppointmentStats = "/appointments/stats"
	EndpointInvoices         = "/billing/invoices"
	EndpointBillingStats     = "/billing/stats"
	EndpointMedications      = "/medications"
	EndpointTestResults      = "/test-results"
	EndpointMessageThreads   = "/messages/threads"
	EndpointThreads          = "/threads"
)

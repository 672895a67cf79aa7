package responses

type DashboardStats struct {
	TotalUsers        int    `json:"totalUsers"`
	TotalDoctors      int    `json:"totalDoctors"`
	TotalPatients     int    `json:"totalPatients"`
	AppointmentsToday int    `json:"appointmentsToday"`
	NewUsersToday     int    `json:"newUsersToday"`
	ActiveSessions    int    `json:"activeSessions"`
	UsersGrowth       string `json:"usersGrowth"`
	DoctorsGrowth     string `json:"doctorsGrowth"`
	PatientsGrowth    string `json:"patientsGrowth"`
	SystemHealth      string `json:"systemHealth"`
}

type ActivityEntry struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	TimeAgo   string `json:"timeAgo"`
}

type DashboardOverview struct {
	Stats       DashboardStats  `json:"stats"`
	RecentUsers []User          `json:"recentUsers"`
	Activity    []ActivityEntry `json:"activity"`
	Partial     bool            `json:"partial,omitempty"`
	RefreshedAt string          `json:"refreshedAt"`
}

package responses

type Invoice struct {
	ID          string      `json:"id"`
	PatientID   string      `json:"patientId"`
	AmountCents int64       `json:"amountCents"`
	Amount      string      `json:"amount"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	Patient     *PatientRef `json:"patient,omitempty"`
}

type BillingStats struct {
	TotalRevenue     string `json:"totalRevenue"`
	PendingAmount    string `json:"pendingAmount"`
	ThisMonthRevenue string `json:"thisMonthRevenue"`
	Total            int    `json:"total"`
}

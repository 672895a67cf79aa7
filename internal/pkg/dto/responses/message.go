package responses

type MessageThread struct {
	ID           string   `json:"id"`
	Subject      string   `json:"subject"`
	Participants []string `json:"participants,omitempty"`
	LastMessage  string   `json:"lastMessage,omitempty"`
	UpdatedAt    string   `json:"updatedAt"`
	CreatedAt    string   `json:"createdAt"`
}

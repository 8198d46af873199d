package models

// SupportTicket is built for a single support notification and discarded afterwards.
type SupportTicket struct {
	ID           string `json:"id"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	School       string `json:"school"`
	Class        string `json:"class"`
	IssueText    string `json:"issue_text"`
	Timestamp    string `json:"timestamp"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

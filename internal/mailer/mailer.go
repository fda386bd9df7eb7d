package mailer

import "context"

// Payload carries the template parameters of the leave status email.
type Payload struct {
	ToEmail    string `json:"to_email"`
	StaffName  string `json:"staff_name"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	Comments   string `json:"comments"`
	Department string `json:"department"`
}

type Mailer interface {
	Send(ctx context.Context, p Payload) error
}

// StatusMessage is the fallback body used when a transition carries no
// comment text.
func StatusMessage(status string) string {
	switch status {
	case "Pending":
		return "Your leave application has been submitted successfully and is pending HOD approval."
	case "Approved by HOD":
		return "Your leave application has been approved by HOD and forwarded to the Principal for final approval."
	case "Rejected by HOD":
		return "Your leave application has been rejected by the HOD."
	case "Approved by Principal":
		return "Your leave application has been approved by the Principal. You may proceed with your leave."
	case "Rejected by Principal":
		return "Your leave application has been rejected by the Principal."
	}
	return "Your leave application status has been updated."
}

package leave

import (
	"time"

	"staff-leave-portal/internal/domain/leave"
	"staff-leave-portal/internal/domain/user"
)

// Actor is the authenticated identity performing a workflow operation.
// Mutations re-validate role/department here, independent of whatever the
// routing layer already filtered.
type Actor struct {
	UID        string
	FullName   string
	Email      string
	Department string
	Role       user.Role
}

type SubmitInput struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

type DecideInput struct {
	LeaveID  string
	Action   leave.Action
	Comments string
}

type LeaveDTO struct {
	LeaveID               string       `json:"leaveId"`
	StaffID               string       `json:"staffId"`
	StaffName             string       `json:"staffName"`
	StaffEmail            string       `json:"staffEmail"`
	Department            string       `json:"department"`
	LeaveType             string       `json:"leaveType"`
	StartDate             string       `json:"startDate"`
	EndDate               string       `json:"endDate"`
	Reason                string       `json:"reason"`
	Status                leave.Status `json:"status"`
	AppliedDate           time.Time    `json:"appliedDate"`
	HODComments           string       `json:"hodComments"`
	PrincipalComments     string       `json:"principalComments"`
	HODApprovalDate       *time.Time   `json:"hodApprovalDate"`
	PrincipalApprovalDate *time.Time   `json:"principalApprovalDate"`
}

func toDTO(l *leave.LeaveRequest) *LeaveDTO {
	return &LeaveDTO{
		LeaveID:               l.LeaveID,
		StaffID:               l.StaffID,
		StaffName:             l.StaffName,
		StaffEmail:            l.StaffEmail,
		Department:            l.Department,
		LeaveType:             l.LeaveType,
		StartDate:             l.StartDate,
		EndDate:               l.EndDate,
		Reason:                l.Reason,
		Status:                l.Status,
		AppliedDate:           l.AppliedDate,
		HODComments:           l.HODComments,
		PrincipalComments:     l.PrincipalComments,
		HODApprovalDate:       l.HODApprovalDate,
		PrincipalApprovalDate: l.PrincipalApprovalDate,
	}
}

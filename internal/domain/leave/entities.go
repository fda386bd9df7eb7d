package leave

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("leave request not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("leave request was decided concurrently")
	ErrForbidden         = errors.New("actor not allowed to decide this request")
	ErrCommentsRequired  = errors.New("comments required when rejecting")
)

type Status string

const (
	StatusPending             Status = "Pending"
	StatusApprovedByHOD       Status = "Approved by HOD"
	StatusRejectedByHOD       Status = "Rejected by HOD"
	StatusApprovedByPrincipal Status = "Approved by Principal"
	StatusRejectedByPrincipal Status = "Rejected by Principal"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// transitions is the whole state machine. Anything not listed here is an
// invalid transition; the three missing statuses are terminal.
var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionApprove: StatusApprovedByHOD,
		ActionReject:  StatusRejectedByHOD,
	},
	StatusApprovedByHOD: {
		ActionApprove: StatusApprovedByPrincipal,
		ActionReject:  StatusRejectedByPrincipal,
	},
}

// Next resolves the transition table for (from, action).
func Next(from Status, action Action) (Status, bool) {
	next, ok := transitions[from][action]
	return next, ok
}

// Terminal reports whether no transition leaves the given status.
func Terminal(s Status) bool {
	return len(transitions[s]) == 0
}

var leaveTypes = map[string]struct{}{
	"Sick Leave":      {},
	"Casual Leave":    {},
	"Earned Leave":    {},
	"Maternity Leave": {},
	"Paternity Leave": {},
	"Emergency Leave": {},
}

func ValidType(t string) bool {
	_, ok := leaveTypes[t]
	return ok
}

// Table: leaves. Requester name/email/department are denormalized at
// submission time so later profile edits never rewrite history.
type LeaveRequest struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	LeaveID    string `gorm:"column:leave_id;type:char(32);not null;uniqueIndex:ux_leaves_leave_id" json:"leaveId"`
	StaffID    string `gorm:"column:staff_id;type:char(32);not null;index:idx_leaves_staff" json:"staffId"`
	StaffName  string `gorm:"column:staff_name;size:120;not null" json:"staffName"`
	StaffEmail string `gorm:"column:staff_email;size:255;not null" json:"staffEmail"`
	Department string `gorm:"column:department;size:120;not null;index:idx_leaves_department" json:"department"`

	LeaveType string `gorm:"column:leave_type;size:40;not null" json:"leaveType"`
	// Dates travel as YYYY-MM-DD strings end to end
	StartDate string `gorm:"column:start_date;size:10;not null" json:"startDate"`
	EndDate   string `gorm:"column:end_date;size:10;not null" json:"endDate"`
	Reason    string `gorm:"column:reason;type:text;not null" json:"reason"`

	Status                Status     `gorm:"column:status;size:30;not null;index:idx_leaves_status" json:"status"`
	AppliedDate           time.Time  `gorm:"column:applied_date;not null" json:"appliedDate"`
	HODComments           string     `gorm:"column:hod_comments;type:text" json:"hodComments"`
	PrincipalComments     string     `gorm:"column:principal_comments;type:text" json:"principalComments"`
	HODApprovalDate       *time.Time `gorm:"column:hod_approval_date" json:"hodApprovalDate"`
	PrincipalApprovalDate *time.Time `gorm:"column:principal_approval_date" json:"principalApprovalDate"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (LeaveRequest) TableName() string { return "leaves" }

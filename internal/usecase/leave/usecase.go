package leave

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"staff-leave-portal/internal/domain/leave"
	"staff-leave-portal/internal/domain/notification"
	"staff-leave-portal/internal/domain/uow"
	"staff-leave-portal/internal/domain/user"
	"staff-leave-portal/internal/mailer"
	"staff-leave-portal/pkg/id"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Usecase struct {
	leaves leave.Repository
	notifs notification.Repository
	uow    uow.UnitOfWork
	mail   mailer.Mailer
}

// NewUsecase: pass the repos, a UoW for the decision flows and a mailer.
func NewUsecase(leaves leave.Repository, notifs notification.Repository, tx uow.UnitOfWork, mail mailer.Mailer) *Usecase {
	return &Usecase{leaves: leaves, notifs: notifs, uow: tx, mail: mail}
}

// Submit creates a new request in Pending and sends the submission email.
// The email is best effort: the returned bool reports whether it went out,
// and a failed send never undoes the persisted record.
func (u *Usecase) Submit(ctx context.Context, actor Actor, in SubmitInput) (*LeaveDTO, bool, error) {
	if in.LeaveType == "" || in.StartDate == "" || in.EndDate == "" || strings.TrimSpace(in.Reason) == "" {
		return nil, false, errors.New("invalid input")
	}
	if !leave.ValidType(in.LeaveType) {
		return nil, false, errors.New("unknown leave type")
	}

	l := &leave.LeaveRequest{
		LeaveID:     id.NewID32(),
		StaffID:     actor.UID,
		StaffName:   actor.FullName,
		StaffEmail:  actor.Email,
		Department:  actor.Department,
		LeaveType:   in.LeaveType,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Reason:      in.Reason,
		Status:      leave.StatusPending,
		AppliedDate: time.Now().UTC(),
	}
	if err := u.leaves.Create(ctx, l); err != nil {
		return nil, false, err
	}

	sent := u.notify(ctx, l, "")
	return toDTO(l), sent, nil
}

// HODDecide moves a Pending request to Approved/Rejected by HOD. The row
// is locked for the duration and the write is conditional on the status
// still being Pending, so a racing second decision gets ErrConflict.
func (u *Usecase) HODDecide(ctx context.Context, actor Actor, in DecideInput) (*LeaveDTO, bool, error) {
	comments := strings.TrimSpace(in.Comments)
	if in.Action == leave.ActionReject && comments == "" {
		return nil, false, leave.ErrCommentsRequired
	}

	var updated *leave.LeaveRequest
	err := u.uow.WithinLeaveTx(ctx, in.LeaveID, func(r uow.Repos, l *leave.LeaveRequest) error {
		if actor.Role != user.RoleHOD {
			return leave.ErrForbidden
		}
		if actor.Department != l.Department {
			return leave.ErrForbidden
		}
		next, ok := leave.Next(l.Status, in.Action)
		if !ok || l.Status != leave.StatusPending {
			return leave.ErrInvalidTransition
		}

		now := time.Now().UTC()
		won, err := r.Leaves.UpdateStatusIf(ctx, l.LeaveID, leave.StatusPending, map[string]any{
			"status":            next,
			"hod_comments":      comments,
			"hod_approval_date": now,
		})
		if err != nil {
			return err
		}
		if !won {
			return leave.ErrConflict
		}

		l.Status = next
		l.HODComments = comments
		l.HODApprovalDate = &now
		updated = l
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, leave.ErrNotFound
		}
		return nil, false, err
	}

	sent := u.notify(ctx, updated, comments)
	return toDTO(updated), sent, nil
}

// PrincipalDecide gives the final decision on a request the HOD approved.
func (u *Usecase) PrincipalDecide(ctx context.Context, actor Actor, in DecideInput) (*LeaveDTO, bool, error) {
	comments := strings.TrimSpace(in.Comments)
	if in.Action == leave.ActionReject && comments == "" {
		return nil, false, leave.ErrCommentsRequired
	}

	var updated *leave.LeaveRequest
	err := u.uow.WithinLeaveTx(ctx, in.LeaveID, func(r uow.Repos, l *leave.LeaveRequest) error {
		if actor.Role != user.RolePrincipal {
			return leave.ErrForbidden
		}
		next, ok := leave.Next(l.Status, in.Action)
		if !ok || l.Status != leave.StatusApprovedByHOD {
			return leave.ErrInvalidTransition
		}

		now := time.Now().UTC()
		won, err := r.Leaves.UpdateStatusIf(ctx, l.LeaveID, leave.StatusApprovedByHOD, map[string]any{
			"status":                  next,
			"principal_comments":      comments,
			"principal_approval_date": now,
		})
		if err != nil {
			return err
		}
		if !won {
			return leave.ErrConflict
		}

		l.Status = next
		l.PrincipalComments = comments
		l.PrincipalApprovalDate = &now
		updated = l
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, leave.ErrNotFound
		}
		return nil, false, err
	}

	sent := u.notify(ctx, updated, combineComments(updated.HODComments, comments))
	return toDTO(updated), sent, nil
}

// List is role-polymorphic: staff see their own requests, HODs their
// department, the principal everything. Newest first.
func (u *Usecase) List(ctx context.Context, actor Actor) ([]LeaveDTO, error) {
	var (
		rows []leave.LeaveRequest
		err  error
	)
	switch actor.Role {
	case user.RoleHOD:
		rows, err = u.leaves.ListByDepartment(ctx, actor.Department)
	case user.RolePrincipal:
		rows, err = u.leaves.ListAll(ctx)
	default:
		rows, err = u.leaves.ListByStaff(ctx, actor.UID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]LeaveDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, actor Actor, leaveID string) (*LeaveDTO, error) {
	l, err := u.fetchVisible(ctx, actor, leaveID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Notifications lists the send-attempt audit rows for a request the actor
// is allowed to see.
func (u *Usecase) Notifications(ctx context.Context, actor Actor, leaveID string) ([]notification.Notification, error) {
	if _, err := u.fetchVisible(ctx, actor, leaveID); err != nil {
		return nil, err
	}
	return u.notifs.ListByLeaveID(ctx, leaveID)
}

func (u *Usecase) fetchVisible(ctx context.Context, actor Actor, leaveID string) (*leave.LeaveRequest, error) {
	l, err := u.leaves.GetByLeaveID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leave.ErrNotFound
		}
		return nil, err
	}
	switch actor.Role {
	case user.RolePrincipal:
	case user.RoleHOD:
		if l.Department != actor.Department {
			return nil, leave.ErrForbidden
		}
	default:
		if l.StaffID != actor.UID {
			return nil, leave.ErrForbidden
		}
	}
	return l, nil
}

// combineComments builds the principal-stage email body: the HOD and
// principal comments joined by a blank line, either side omitted when
// empty.
func combineComments(hod, principal string) string {
	var parts []string
	if hod != "" {
		parts = append(parts, "HOD: "+hod)
	}
	if principal != "" {
		parts = append(parts, "Principal: "+principal)
	}
	return strings.Join(parts, "\n\n")
}

// notify sends the status email and records the attempt. Failures are
// logged and audited, never bubbled up: the persisted transition stands.
func (u *Usecase) notify(ctx context.Context, l *leave.LeaveRequest, comments string) bool {
	message := comments
	if message == "" {
		message = mailer.StatusMessage(string(l.Status))
	}

	sendErr := u.mail.Send(ctx, mailer.Payload{
		ToEmail:    l.StaffEmail,
		StaffName:  l.StaffName,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Status:     string(l.Status),
		Comments:   message,
		Department: l.Department,
	})

	n := &notification.Notification{
		NotificationID: uuid.NewString(),
		LeaveID:        l.LeaveID,
		Recipient:      l.StaffEmail,
		LeaveStatus:    string(l.Status),
		Message:        message,
		Status:         notification.StatusSent,
	}
	if sendErr != nil {
		n.Status = notification.StatusFailed
		n.Error = sendErr.Error()
		log.Printf("mailer: send to %s for leave %s failed: %v", l.StaffEmail, l.LeaveID, sendErr)
	}
	if err := u.notifs.Create(ctx, n); err != nil {
		log.Printf("notification audit for leave %s failed: %v", l.LeaveID, err)
	}
	return sendErr == nil
}

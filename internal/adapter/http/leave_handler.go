package http

import (
	"context"
	"errors"
	"net/http"

	"staff-leave-portal/internal/adapter/middleware"
	"staff-leave-portal/internal/domain/leave"
	"staff-leave-portal/internal/domain/user"
	leaveUC "staff-leave-portal/internal/usecase/leave"

	"github.com/labstack/echo/v4"
)

type LeaveHandler struct{ uc *leaveUC.Usecase }

func NewLeaveHandler(uc *leaveUC.Usecase) *LeaveHandler { return &LeaveHandler{uc: uc} }

// actorFrom rebuilds the usecase actor from the verified token claims.
func actorFrom(c echo.Context) (leaveUC.Actor, bool) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return leaveUC.Actor{}, false
	}
	return leaveUC.Actor{
		UID:        claims.Sub,
		FullName:   claims.Name,
		Email:      claims.Email,
		Department: claims.Department,
		Role:       user.Role(claims.Role),
	}, true
}

type submitLeaveReq struct {
	LeaveType string `json:"leaveType" validate:"required,leavetype"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate"   validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"    validate:"required"`
}

// leaveResp decorates the DTO with the email outcome; a failed send is
// reported, never an error status.
type leaveResp struct {
	*leaveUC.LeaveDTO
	EmailSent bool `json:"email_sent"`
}

func (h *LeaveHandler) Submit(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	var req submitLeaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, sent, err := h.uc.Submit(c.Request().Context(), actor, leaveUC.SubmitInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, leaveResp{LeaveDTO: dto, EmailSent: sent})
}

func (h *LeaveHandler) List(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	rows, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LeaveHandler) Get(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	leaveID := c.Param("leave_id")
	if leaveID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing leave_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), actor, leaveID)
	if err != nil {
		return mapLeaveErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type decideReq struct {
	Action   string `json:"action"   validate:"required,oneof=approve reject"`
	Comments string `json:"comments"`
}

type decideFn func(ctx context.Context, actor leaveUC.Actor, in leaveUC.DecideInput) (*leaveUC.LeaveDTO, bool, error)

func (h *LeaveHandler) HODDecide(c echo.Context) error {
	return h.decide(c, h.uc.HODDecide)
}

func (h *LeaveHandler) PrincipalDecide(c echo.Context) error {
	return h.decide(c, h.uc.PrincipalDecide)
}

func (h *LeaveHandler) decide(c echo.Context, fn decideFn) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	leaveID := c.Param("leave_id")
	if leaveID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing leave_id path param"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, sent, err := fn(c.Request().Context(), actor, leaveUC.DecideInput{
		LeaveID:  leaveID,
		Action:   leave.Action(req.Action),
		Comments: req.Comments,
	})
	if err != nil {
		return mapLeaveErr(c, err)
	}
	return c.JSON(http.StatusOK, leaveResp{LeaveDTO: dto, EmailSent: sent})
}

func mapLeaveErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, leave.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, leave.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "invalid status transition"})
	case errors.Is(err, leave.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "request was decided concurrently"})
	case errors.Is(err, leave.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, leave.ErrCommentsRequired):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "comments required when rejecting"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func (h *LeaveHandler) Notifications(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing identity"})
	}
	leaveID := c.Param("leave_id")
	if leaveID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing leave_id path param"})
	}
	rows, err := h.uc.Notifications(c.Request().Context(), actor, leaveID)
	if err != nil {
		return mapLeaveErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

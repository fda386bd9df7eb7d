package http

import (
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		StaffID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{StaffID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{StaffID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		found := false
		for _, e := range fe {
			if e.Field == "StaffID" && strings.Contains(e.Message, "32-char lowercase hex") {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestLeaveTypeValidation(t *testing.T) {
	type P struct {
		LeaveType string `validate:"leavetype"`
	}
	cv := NewValidator()

	for _, s := range []string{
		"Sick Leave", "Casual Leave", "Earned Leave",
		"Maternity Leave", "Paternity Leave", "Emergency Leave",
	} {
		if err := cv.Validate(P{LeaveType: s}); err != nil {
			t.Fatalf("expected %q to validate, got err: %v", s, err)
		}
	}

	for _, s := range []string{"", "Sick", "sick leave", "Sabbatical", "Sick Leave "} {
		err := cv.Validate(P{LeaveType: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "LeaveType", "known leave type") {
			t.Fatalf("expected leavetype message for %q, got: %+v", s, ToFieldErrors(err))
		}
	}
}

func TestDatetimeValidation(t *testing.T) {
	type P struct {
		StartDate string `validate:"required,datetime=2006-01-02"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{StartDate: "2025-01-10"}); err != nil {
		t.Fatalf("expected valid date, got err: %v", err)
	}

	for _, s := range []string{"10-01-2025", "2025/01/10", "2025-13-01", "not-a-date"} {
		err := cv.Validate(P{StartDate: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "StartDate", "YYYY-MM-DD") {
			t.Fatalf("expected datetime message for %q, got: %+v", s, ToFieldErrors(err))
		}
	}
}

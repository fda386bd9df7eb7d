package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew_ProviderSelection(t *testing.T) {
	if _, ok := New("", Config{}).(logMailer); !ok {
		t.Fatalf("empty kind should select log provider")
	}
	if _, ok := New("noop", Config{}).(noopMailer); !ok {
		t.Fatalf("noop kind should select noop provider")
	}
	if _, ok := New("fail", Config{}).(failMailer); !ok {
		t.Fatalf("fail kind should select fail provider")
	}
	// emailjs without credentials degrades to log
	if _, ok := New("emailjs", Config{}).(logMailer); !ok {
		t.Fatalf("emailjs without credentials should fall back to log provider")
	}
	cfg := Config{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}
	if _, ok := New("emailjs", cfg).(*emailJSMailer); !ok {
		t.Fatalf("emailjs with credentials should select emailjs provider")
	}
}

func TestEmailJS_SendsExpectedBody(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New("emailjs", Config{
		ServiceID:  "svc",
		TemplateID: "tpl",
		PublicKey:  "key",
		BaseURL:    srv.URL,
	})
	p := Payload{
		ToEmail:    "staff@example.edu",
		StaffName:  "A Staff",
		LeaveType:  "Sick Leave",
		StartDate:  "2025-01-10",
		EndDate:    "2025-01-12",
		Status:     "Pending",
		Comments:   "flu",
		Department: "Physics",
	}
	if err := m.Send(context.Background(), p); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got.ServiceID != "svc" || got.TemplateID != "tpl" || got.UserID != "key" {
		t.Fatalf("credentials mismatch: %+v", got)
	}
	if got.TemplateParams != p {
		t.Fatalf("template params mismatch:\n got %+v\nwant %+v", got.TemplateParams, p)
	}
}

func TestEmailJS_RejectedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	m := New("emailjs", Config{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key", BaseURL: srv.URL})
	if err := m.Send(context.Background(), Payload{ToEmail: "x@y.z"}); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestStatusMessage(t *testing.T) {
	cases := map[string]string{
		"Pending":               "pending HOD approval",
		"Approved by HOD":       "forwarded to the Principal",
		"Rejected by HOD":       "rejected by the HOD",
		"Approved by Principal": "approved by the Principal",
		"Rejected by Principal": "rejected by the Principal",
		"Something Else":        "status has been updated",
	}
	for status, want := range cases {
		got := StatusMessage(status)
		if !strings.Contains(got, want) {
			t.Errorf("StatusMessage(%q) = %q, want substring %q", status, got, want)
		}
	}
}

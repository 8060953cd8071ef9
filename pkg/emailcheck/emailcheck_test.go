package emailcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDomainShapeOK(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"ann@example.com", true},
		{"ann@sub.example.co.uk", true},
		{"ann@пошта.укр", true}, // IDN normalizes
		{"ann@", false},
		{"@example.com", false},
		{"ann@example.notarealtld", false},
		{"no-at-sign", false},
	}
	for _, c := range cases {
		if got := DomainShapeOK(c.email); got != c.ok {
			t.Fatalf("DomainShapeOK(%q) = %v, want %v", c.email, got, c.ok)
		}
	}
}

func TestCheckPassesOnOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}
		if r.FormValue("action") != "checkemail" {
			t.Fatalf("unexpected action %q", r.FormValue("action"))
		}
		if r.FormValue("security") != "tok" {
			t.Fatalf("unexpected security %q", r.FormValue("security"))
		}
		w.Write([]byte(`{"success":true,"data":{"status":"ok"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	if !c.Check(context.Background(), "ann@example.com") {
		t.Fatal("expected pass for data.status == ok")
	}
}

func TestCheckFailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"status":"not_found"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	if c.Check(context.Background(), "ann@example.com") {
		t.Fatal("any status other than ok must fail")
	}

	// Network failure fails closed too.
	down := New("http://127.0.0.1:0/down", "tok")
	if down.Check(context.Background(), "ann@example.com") {
		t.Fatal("transport failure must fail closed")
	}
}

func TestCheckRemoteStageDisabled(t *testing.T) {
	c := New("", "")
	if !c.Check(context.Background(), "ann@example.com") {
		t.Fatal("syntactically fine email should pass with remote stage disabled")
	}
	if c.Check(context.Background(), "ann@example.notarealtld") {
		t.Fatal("syntactic stage still applies")
	}
}

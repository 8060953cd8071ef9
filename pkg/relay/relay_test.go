package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leadstack/leadform/pkg/whttp"
)

func TestSubmitSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart: %v", err)
		}
		if r.FormValue("action") != "forms" {
			t.Fatalf("unexpected action %q", r.FormValue("action"))
		}
		w.Write([]byte(`{"status":"success","intelza_id":"el-123"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	pending := c.Submit(context.Background(), []whttp.FormField{{Name: "action", Value: "forms"}})

	res, err := pending.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected OK, got %d", res.StatusCode)
	}
	if res.ExternalID != "el-123" {
		t.Fatalf("expected external id, got %q", res.ExternalID)
	}
}

func TestSubmitNon200IsNotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res, err := New(srv.URL).Submit(context.Background(), nil).Wait(context.Background())
	if err != nil {
		t.Fatalf("a settled non-200 is a result, not a transport error: %v", err)
	}
	if res.OK() {
		t.Fatal("500 must not be OK")
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	_, err := New("http://127.0.0.1:0/down").Submit(context.Background(), nil).Wait(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := err.(*TransportError); !ok {
		t.Fatalf("expected *TransportError, got %T", err)
	}
}

func TestSubmitSingleAttempt(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Submit(context.Background(), nil).Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if attempts != 1 {
		t.Fatalf("expected exactly one attempt, got %d", attempts)
	}
}

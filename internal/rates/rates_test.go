package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestConvert(t *testing.T) {
	if got := Convert(100, 50000); got != 0.002 {
		t.Fatalf("expected 0.002, got %v", got)
	}
	if got := Convert(100, 0); got != 0 {
		t.Fatalf("expected 0 for zero rate, got %v", got)
	}
	if got := Convert(100, -5); got != 0 {
		t.Fatalf("expected 0 for negative rate, got %v", got)
	}
}

func TestFormatSettlement(t *testing.T) {
	if got := FormatSettlement(0.002); got != "0.00200000" {
		t.Fatalf("expected 0.00200000, got %s", got)
	}
	if got := FormatSettlement(0); got != "0.00000000" {
		t.Fatalf("expected 0.00000000, got %s", got)
	}
	if FormatSettlement(0.12345678) != FormatSettlement(0.12345678) {
		t.Fatal("expected formatting to be stable for equal inputs")
	}
}

func TestFormatBase(t *testing.T) {
	if got := FormatBase(1234.5); got != "$1,234.50" {
		t.Fatalf("expected $1,234.50, got %s", got)
	}
	if got := FormatBase(25); got != "$25.00" {
		t.Fatalf("expected $25.00, got %s", got)
	}
}

func TestFetchRateOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin":{"usd":50000}}`))
	}))
	defer srv.Close()

	s := New(srv.URL, 95000, time.Second)
	if got := s.FetchRate(context.Background()); got != 50000 {
		t.Fatalf("expected 50000, got %v", got)
	}
}

func TestFetchRateFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
		{"zero price", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"bitcoin":{"usd":0}}`))
		}},
	}

	for _, tc := range tests {
		srv := httptest.NewServer(tc.handler)
		s := New(srv.URL, 95000, time.Second)
		if got := s.FetchRate(context.Background()); got != 95000 {
			t.Fatalf("%s: expected fallback 95000, got %v", tc.name, got)
		}
		srv.Close()
	}
}

func TestFetchRateNetworkErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	s := New(srv.URL, 95000, time.Second)
	if got := s.FetchRate(context.Background()); got != 95000 {
		t.Fatalf("expected fallback 95000 on network error, got %v", got)
	}
}

package vision

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewDetectorGateway(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		t.Setenv("DETECTOR_MOCK", "")
		_, err := NewDetectorGateway("  ")
		if !errors.Is(err, ErrMissingDetectorURL) {
			t.Fatalf("expected ErrMissingDetectorURL, got %v", err)
		}
	})

	t.Run("mock mode skips the url requirement", func(t *testing.T) {
		t.Setenv("DETECTOR_MOCK", "true")
		gw, err := NewDetectorGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		detections, err := gw.AnalyzeImage(context.Background(), "uploads/x.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(detections) != 1 || detections[0].Label != "device_intact" {
			t.Fatalf("unexpected mock detections: %+v", detections)
		}
	})
}

func TestDetectorGateway_AnalyzeImage(t *testing.T) {
	t.Setenv("DETECTOR_MOCK", "")

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/analyze" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			var body struct {
				ImageRef string `json:"image_ref"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ImageRef != "uploads/x.jpg" {
				t.Fatalf("unexpected body: %+v err=%v", body, err)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"detections":[{"label":"cracked_screen","confidence":0.93,"component":"screen"}]}`))
		}))
		defer srv.Close()

		gw, err := NewDetectorGateway(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		detections, err := gw.AnalyzeImage(context.Background(), "uploads/x.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(detections) != 1 {
			t.Fatalf("expected 1 detection, got %d", len(detections))
		}
		if detections[0].Label != "cracked_screen" || detections[0].Confidence != 0.93 {
			t.Fatalf("unexpected detection: %+v", detections[0])
		}
	})

	t.Run("server error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		gw, err := NewDetectorGateway(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := gw.AnalyzeImage(context.Background(), "uploads/x.jpg"); err == nil {
			t.Fatalf("expected an error on 502")
		}
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		var gw *DetectorGateway
		if _, err := gw.AnalyzeImage(context.Background(), "uploads/x.jpg"); err == nil {
			t.Fatalf("expected an error from a nil gateway")
		}
	})
}

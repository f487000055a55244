package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnumsListsEveryGroup(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, echoGenerator())
	req := httptest.NewRequest(http.MethodGet, "/api/enums", nil)
	rec := httptest.NewRecorder()
	app.Enums(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string][]enumOption
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	counts := map[string]int{
		"aspect_ratios":     6,
		"shot_types":        11,
		"camera_movements":  10,
		"photography_types": 12,
		"lens_types":        6,
		"lighting_types":    11,
	}
	for group, want := range counts {
		if got := len(resp[group]); got != want {
			t.Errorf("%s: %d entries, want %d", group, got, want)
		}
	}

	for _, opt := range resp["shot_types"] {
		if opt.Value == "" || opt.Label == "" {
			t.Fatalf("shot type entry missing value or label: %+v", opt)
		}
		if opt.Value == "extreme_close_up" && opt.Label != "Extreme Close Up" {
			t.Fatalf("label = %q, want %q", opt.Label, "Extreme Close Up")
		}
	}
	for _, opt := range resp["aspect_ratios"] {
		if opt.Value != opt.Label {
			t.Fatalf("aspect ratio label should match value, got %+v", opt)
		}
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, echoGenerator())
	rec := httptest.NewRecorder()
	app.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != "ok" {
		t.Fatalf("status field = %q", resp["status"])
	}
}

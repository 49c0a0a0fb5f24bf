package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/copyforge/copyforge/internal/api"
	"github.com/copyforge/copyforge/internal/config"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{UploadDir: t.TempDir(), Port: "0"}
	return New(cfg)
}

func TestBuildSchedule_Shapes(t *testing.T) {
	for n := 1; n <= 7; n++ {
		sched := BuildSchedule(n)
		if len(sched) != n {
			t.Fatalf("n=%d: got %d slots", n, len(sched))
		}
		for i, s := range sched {
			if s.Index != i {
				t.Fatalf("n=%d: slot %d has index %d", n, i, s.Index)
			}
		}
		last := sched[len(sched)-1]
		if n == 7 {
			if !last.CTAEnabled || last.DayCode != "sun" || last.TemplateID != "T4_STORIA" {
				t.Fatalf("n=7: last slot is not the Sunday CTA: %+v", last)
			}
		} else if last.CTAEnabled {
			t.Fatalf("n=%d: unexpected CTA slot %+v", n, last)
		}
	}
	if sched := BuildSchedule(0); sched != nil {
		t.Fatalf("n=0: expected nil, got %v", sched)
	}
	if BuildSchedule(3)[0].DayCode != "mon" {
		t.Fatal("schedule must start on Monday")
	}
}

func TestInferTemplate(t *testing.T) {
	cases := map[string]string{
		"oggetto_ring.jpg":    "T1_OGGETTO",
		"dettaglio_grain.png": "T2_DETTAGLIO",
		"processo_bench.webp": "T3_PROCESSO",
		"Storia_shop.JPG":     "T4_STORIA",
		"ring.jpg":            "unknown",
		"vacation_photo.jpg":  "unknown",
	}
	for name, want := range cases {
		if got := InferTemplate(name); got != want {
			t.Fatalf("InferTemplate(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSchedulePreviewEndpoint(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/schedule-preview?n_posts=7", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		NPosts   int                `json:"n_posts"`
		Schedule []api.ScheduleSlot `json:"schedule"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.NPosts != 7 || len(out.Schedule) != 7 || !out.Schedule[6].CTAEnabled {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestSchedulePreviewEndpoint_BadParam(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/schedule-preview?n_posts=lots", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUploadMultipleEndpoint(t *testing.T) {
	app := testApp(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range []string{"oggetto_a.jpg", "notes.txt", "dettaglio_b.png"} {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		part.Write([]byte("data"))
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload-multiple", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Uploaded []api.Asset `json:"uploaded"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The text file is skipped, not an error.
	if len(out.Uploaded) != 2 {
		t.Fatalf("uploaded = %+v, want 2 images", out.Uploaded)
	}
	if out.Uploaded[0].InferredTemplate != "T1_OGGETTO" || out.Uploaded[1].InferredTemplate != "T2_DETTAGLIO" {
		t.Fatalf("unexpected inference: %+v", out.Uploaded)
	}
	if _, err := os.Stat(filepath.Join(app.cfg.UploadDir, "oggetto_a.jpg")); err != nil {
		t.Fatalf("file not stored: %v", err)
	}
}

func TestDeleteUploadEndpoint(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(app.cfg.UploadDir, "oggetto_gone.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/uploads/oggetto_gone.jpg", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("file still present")
	}

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/uploads/oggetto_gone.jpg", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestGenerateEndpoint_NoUpstream(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var out struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil || out.Detail == "" {
		t.Fatalf("expected detail message, got %s", rec.Body.String())
	}
}

func TestGenerateEndpoint_Proxied(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"week_brief":{"theme":"t","goal":"g","keywords":[],"cta":{"text":""}},"posts":[]}`))
	}))
	defer upstream.Close()

	cfg := &config.Config{UploadDir: t.TempDir(), GeneratorURL: upstream.URL}
	app := New(cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(`{"goal":"g"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res api.GenerationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

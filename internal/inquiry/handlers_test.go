package inquiry_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kumaraguru-geo/geo-portal-api/internal/common"
	"github.com/kumaraguru-geo/geo-portal-api/internal/health"
	"github.com/kumaraguru-geo/geo-portal-api/internal/inquiry"
	"github.com/kumaraguru-geo/geo-portal-api/internal/mail"
)

const officeEmail = "geo@office.test"

func newHandler(recorder *mail.Recorder) *inquiry.Handler {
	svc := &inquiry.Service{
		Mail:        recorder,
		OfficeEmail: officeEmail,
		Logger:      zerolog.Nop(),
	}
	return inquiry.NewHandler(svc, zerolog.Nop())
}

// newRouter mirrors the route table the server installs.
func newRouter(h *inquiry.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Get("/api/health", health.Handler{Env: "test"}.Status)
	r.Post("/api/partnership-inquiry", h.Partnership)
	r.Post("/api/counseling-inquiry", h.Counseling)
	r.Post("/api/research-inquiry", h.Research)
	r.Post("/api/global-faculty-inquiry", h.GlobalFaculty)
	r.MethodFunc(http.MethodOptions, "/*", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	notFound := func(w http.ResponseWriter, _ *http.Request) {
		common.JSONError(w, http.StatusNotFound, "Not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func partnershipPayload() map[string]any {
	return map[string]any{
		"institution":   "Test U",
		"country":       "Testland",
		"contactPerson": "A. Tester",
		"designation":   "Dean",
		"email":         "a@test.edu",
		"phone":         "+1-555-0100",
		"interests":     map[string]bool{"studentMobility": true, "jointResearch": true},
		"notes":         "",
	}
}

func TestPartnershipSubmission(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	rr := postJSON(t, router, "/api/partnership-inquiry", partnershipPayload())
	require.Equal(t, http.StatusOK, rr.Code)

	var result common.SubmissionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.Equal(t, "Submitted successfully", result.Message)

	require.Len(t, recorder.Outbox, 2)
	staff, confirm := recorder.Outbox[0], recorder.Outbox[1]

	require.Equal(t, officeEmail, staff.To)
	require.Equal(t, "a@test.edu", staff.ReplyTo)
	require.Contains(t, staff.Subject, "Test U")
	require.Contains(t, staff.Subject, "Testland")
	require.Contains(t, staff.HTML, "Student Mobility")
	require.Contains(t, staff.HTML, "Joint Research &amp; Innovation")
	require.NotContains(t, staff.HTML, "Faculty Mobility")

	require.Equal(t, "a@test.edu", confirm.To)
	require.Equal(t, "Thank you - Kumaraguru Partnership Inquiry", confirm.Subject)
	require.Contains(t, confirm.HTML, "A. Tester")
	require.Contains(t, confirm.HTML, "Test U")
}

func TestPartnershipNoInterestsSelected(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	payload := partnershipPayload()
	payload["interests"] = map[string]bool{}
	rr := postJSON(t, router, "/api/partnership-inquiry", payload)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, recorder.Outbox, 2)
	require.Contains(t, recorder.Outbox[0].HTML, "No areas selected")
}

func TestPartnershipMissingRequiredFields(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	rr := postJSON(t, router, "/api/partnership-inquiry", map[string]any{
		"institution": "Test U",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Zero(t, recorder.Calls())

	var result common.SubmissionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.False(t, result.Success)
}

func counselingPayload() map[string]any {
	return map[string]any{
		"name":           "S. Student",
		"email":          "student@test.edu",
		"year":           "3rd Year",
		"program":        "B.E. CSE",
		"areaOfInterest": "Semester Abroad",
	}
}

func TestCounselingAttachmentDecoded(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	raw := []byte("resume bytes for the counseling team")
	payload := counselingPayload()
	payload["attachment"] = map[string]any{
		"name": "resume.pdf",
		"size": len(raw),
		"type": "application/pdf",
		"data": base64.StdEncoding.EncodeToString(raw),
	}

	rr := postJSON(t, router, "/api/counseling-inquiry", payload)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, recorder.Outbox, 2)

	staff := recorder.Outbox[0]
	require.Len(t, staff.Attachments, 1)
	require.Equal(t, "resume.pdf", staff.Attachments[0].Filename)
	require.Equal(t, "application/pdf", staff.Attachments[0].ContentType)
	require.Equal(t, raw, staff.Attachments[0].Content)
	require.Len(t, recorder.Outbox[1].Attachments, 0)
}

func TestCounselingInvalidAttachmentEncoding(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	payload := counselingPayload()
	payload["attachment"] = map[string]any{
		"name": "resume.pdf",
		"data": "not-valid-base64!!!",
	}

	rr := postJSON(t, router, "/api/counseling-inquiry", payload)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Zero(t, recorder.Calls())
}

func TestResearchSubmission(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	rr := postJSON(t, router, "/api/research-inquiry", map[string]any{
		"name":           "Dr. R. Searcher",
		"institution":    "Test U",
		"country":        "Testland",
		"researchDomain": "Materials Science",
		"preferredMode":  "Joint Publication",
		"email":          "r@test.edu",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, recorder.Outbox, 2)

	staff := recorder.Outbox[0]
	require.Contains(t, staff.Subject, "Dr. R. Searcher")
	require.Contains(t, staff.Subject, "Materials Science")
	require.Contains(t, staff.HTML, "Not provided")

	var result common.SubmissionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Equal(t, "Research inquiry submitted successfully", result.Message)
}

func TestGlobalFacultyEngagementLabels(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	rr := postJSON(t, router, "/api/global-faculty-inquiry", map[string]any{
		"name":        "Prof. G. Lobal",
		"institution": "Test U",
		"country":     "Testland",
		"expertise":   "Distributed Systems",
		"engagement":  []string{"coil", "masterclass", "keynote"},
		"email":       "g@test.edu",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, recorder.Outbox, 2)

	html := recorder.Outbox[0].HTML
	require.Contains(t, html, "COIL Program")
	require.Contains(t, html, "Online Masterclass")
	require.Contains(t, html, "keynote")
	require.Less(t, strings.Index(html, "COIL Program"), strings.Index(html, "Online Masterclass"))
}

func TestGlobalFacultyNoEngagementSelected(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	rr := postJSON(t, router, "/api/global-faculty-inquiry", map[string]any{
		"name":        "Prof. G. Lobal",
		"institution": "Test U",
		"country":     "Testland",
		"expertise":   "Distributed Systems",
		"email":       "g@test.edu",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, recorder.Outbox[0].HTML, "No engagement types selected")
}

func TestFirstDispatchFailureSkipsConfirmation(t *testing.T) {
	recorder := &mail.Recorder{FailAt: 1, FailErr: errors.New("smtp auth failed")}
	router := newRouter(newHandler(recorder))

	rr := postJSON(t, router, "/api/partnership-inquiry", partnershipPayload())
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, 1, recorder.Calls())
	require.Empty(t, recorder.Outbox)

	var result common.SubmissionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.False(t, result.Success)
	require.Equal(t, "Failed to submit", result.Message)
}

func TestSecondDispatchFailureStillFailsRequest(t *testing.T) {
	recorder := &mail.Recorder{FailAt: 2, FailErr: errors.New("connection reset")}
	router := newRouter(newHandler(recorder))

	rr := postJSON(t, router, "/api/partnership-inquiry", partnershipPayload())
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	// The staff notification already went out: duplicate risk on retry.
	require.Equal(t, 2, recorder.Calls())
	require.Len(t, recorder.Outbox, 1)
	require.Equal(t, officeEmail, recorder.Outbox[0].To)
}

func TestHealthNeverDispatches(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"status":"OK"`)
	require.Zero(t, recorder.Calls())
}

func TestUnknownPathReturns404(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	rr := postJSON(t, router, "/api/unknown-inquiry", map[string]any{})
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), `"error"`)
	require.Zero(t, recorder.Calls())
}

func TestOptionsAlwaysOK(t *testing.T) {
	recorder := &mail.Recorder{}
	router := newRouter(newHandler(recorder))

	for _, path := range []string{"/api/partnership-inquiry", "/api/unknown", "/totally/else"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://global.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, path)
		require.Empty(t, rr.Body.String(), path)
		headers := rr.Result().Header
		require.NotEmpty(t, headers.Get("Access-Control-Allow-Origin"), path)
		require.NotEmpty(t, headers.Get("Access-Control-Allow-Methods"), path)
		require.NotEmpty(t, headers.Get("Access-Control-Allow-Headers"), path)
		require.Equal(t, "true", headers.Get("Access-Control-Allow-Credentials"), path)
	}
	require.Zero(t, recorder.Calls())
}

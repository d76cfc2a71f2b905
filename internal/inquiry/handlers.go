package inquiry

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/kumaraguru-geo/geo-portal-api/internal/common"
	"github.com/kumaraguru-geo/geo-portal-api/internal/obs"
)

// Handler exposes one HTTP handler per inquiry type over a shared pipeline.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
	Logger   zerolog.Logger
}

// NewHandler wires the submission pipeline for all four inquiry types.
func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{
		Svc:      svc,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Logger:   logger,
	}
}

// Partnership handles POST /api/partnership-inquiry.
func (h *Handler) Partnership(w http.ResponseWriter, r *http.Request) {
	var payload Partnership
	if !h.decode(w, r, &payload) {
		return
	}
	h.submit(w, r, &payload, "Submitted successfully", "Failed to submit")
}

// Counseling handles POST /api/counseling-inquiry.
func (h *Handler) Counseling(w http.ResponseWriter, r *http.Request) {
	var payload Counseling
	if !h.decode(w, r, &payload) {
		return
	}
	h.submit(w, r, &payload, "Counseling request submitted successfully", "Failed to submit counseling request")
}

// Research handles POST /api/research-inquiry.
func (h *Handler) Research(w http.ResponseWriter, r *http.Request) {
	var payload Research
	if !h.decode(w, r, &payload) {
		return
	}
	h.submit(w, r, &payload, "Research inquiry submitted successfully", "Failed to submit research inquiry")
}

// GlobalFaculty handles POST /api/global-faculty-inquiry.
func (h *Handler) GlobalFaculty(w http.ResponseWriter, r *http.Request) {
	var payload GlobalFaculty
	if !h.decode(w, r, &payload) {
		return
	}
	h.submit(w, r, &payload, "Global faculty inquiry submitted successfully", "Failed to submit global faculty inquiry")
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		common.Result(w, http.StatusBadRequest, false, "Invalid request payload")
		return false
	}
	return true
}

// submit runs the shared pipeline: validate, normalize, render and dispatch.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, q Inquiry, success, failure string) {
	if h.Validate != nil {
		if err := h.Validate.Struct(q); err != nil {
			h.count(q, "invalid")
			common.Result(w, http.StatusBadRequest, false, "Missing or invalid required fields")
			return
		}
	}
	if n, ok := q.(normalizer); ok {
		if err := n.normalize(); err != nil {
			h.count(q, "invalid")
			common.Result(w, http.StatusBadRequest, false, "Invalid attachment encoding")
			return
		}
	}
	if err := h.Svc.Submit(q); err != nil {
		h.Logger.Error().
			Err(err).
			Str("type", q.Kind()).
			Str("remote_ip", common.ClientIP(r)).
			Msg("inquiry submission failed")
		h.count(q, "error")
		common.Result(w, http.StatusInternalServerError, false, failure)
		return
	}
	h.count(q, "ok")
	common.Result(w, http.StatusOK, true, success)
}

func (h *Handler) count(q Inquiry, result string) {
	if obs.InquirySubmissionsTotal != nil {
		obs.InquirySubmissionsTotal.WithLabelValues(q.Kind(), result).Inc()
	}
}

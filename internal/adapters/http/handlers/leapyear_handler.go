package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
	"github.com/jsamuelsen11/leapyear-service/internal/ports"
)

// LeapYearHandler handles the /api/v1/years endpoints.
type LeapYearHandler struct {
	svc ports.LeapYearService
}

// NewLeapYearHandler creates a new LeapYearHandler.
func NewLeapYearHandler(svc ports.LeapYearService) *LeapYearHandler {
	return &LeapYearHandler{svc: svc}
}

// GetYear handles GET /api/v1/years/{year}.
func (h *LeapYearHandler) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearParam(r, "year")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	v := h.svc.Check(r.Context(), year)
	writeJSON(w, r, http.StatusOK, dto.ToYearResponse(v))
}

// ListYears handles GET /api/v1/years?from=&to=.
func (h *LeapYearHandler) ListYears(w http.ResponseWriter, r *http.Request) {
	q, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	verdicts, err := h.svc.CheckRange(r.Context(), q.Range())
	if err != nil {
		logging.FromContext(r.Context()).DebugContext(r.Context(), "range query rejected", slog.Any("error", err))
		dto.WriteErrorResponse(w, r, locate(err, "query."))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToYearListResponse(verdicts))
}

// CountYears handles GET /api/v1/years/count?from=&to=.
func (h *LeapYearHandler) CountYears(w http.ResponseWriter, r *http.Request) {
	q, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	rng := q.Range()
	n, err := h.svc.Count(r.Context(), rng)
	if err != nil {
		dto.WriteErrorResponse(w, r, locate(err, "query."))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CountResponse{From: rng.From, To: rng.To, LeapYears: n})
}

// Batch handles POST /api/v1/years/batch.
func (h *LeapYearHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	verdicts, err := h.svc.CheckBatch(r.Context(), req.Years)
	if err != nil {
		dto.WriteErrorResponse(w, r, locate(err, "body."))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToYearListResponse(verdicts))
}

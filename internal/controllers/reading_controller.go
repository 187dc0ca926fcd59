package controllers

import (
	"errors"
	"net/http"
	"readtrack/internal/providers"
	"readtrack/internal/tracker"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 10 // 1 KB

type errorResponse struct {
	Error string `json:"error"`
}

type goalRequest struct {
	Goal int `json:"goal"`
}

// Clock supplies the current time to the reading actions.
type Clock func() time.Time

type ReadingController struct {
	logger  providers.Logger
	service tracker.ReadingServiceInterface
	now     Clock
}

func NewReadingController(logger providers.Logger, service tracker.ReadingServiceInterface) *ReadingController {
	return &ReadingController{
		logger:  logger,
		service: service,
		now:     time.Now,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func statusFor(err error) int {
	switch {
	case tracker.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, tracker.ErrChapterNotFound):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrChapterUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, tracker.ErrNoChapterLoaded), errors.Is(err, tracker.ErrAlreadyMarked):
		return http.StatusConflict
	case errors.Is(err, tracker.ErrConfirmationRequired):
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

func (rc *ReadingController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		rc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func (rc *ReadingController) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rc.service.Open(r.Context(), rc.now()))
}

func (rc *ReadingController) SearchChapter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	chapter, err := rc.service.SearchChapter(r.Context(), q.Get("book"), q.Get("chapter"))
	if err != nil {
		rc.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chapter)
}

func (rc *ReadingController) MarkRead(w http.ResponseWriter, r *http.Request) {
	res, err := rc.service.MarkRead(r.Context(), rc.now())
	if err != nil {
		rc.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (rc *ReadingController) SetGoal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload goalRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"goal\": <integer>}"})
		return
	}

	dashboard, err := rc.service.SetGoal(r.Context(), payload.Goal, rc.now())
	if err != nil {
		rc.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (rc *ReadingController) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rc.service.Stats(rc.now()))
}

func (rc *ReadingController) Achievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rc.service.Achievements(rc.now()))
}

func (rc *ReadingController) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, rc.service.History(limit))
}

func (rc *ReadingController) RequestReset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusAccepted, rc.service.RequestReset(rc.now()))
}

func (rc *ReadingController) ConfirmReset(w http.ResponseWriter, r *http.Request) {
	if err := rc.service.ConfirmReset(r.URL.Query().Get("confirm"), rc.now()); err != nil {
		rc.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

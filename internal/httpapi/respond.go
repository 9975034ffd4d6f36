package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/budget"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/narrative"
)

var (
	errNotFound    = errors.New("resource not found")
	errBadRequest  = errors.New("bad request")
	errUnavailable = errors.New("analysis is not configured: set GEMINI_API_KEY")
)

// ProblemDetail is an RFC 7807 error body.
type ProblemDetail struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func problem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ProblemDetail{Title: title, Status: status, Detail: detail})
}

func decodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}

// respondError maps domain errors to problem responses. Unknown errors are
// logged and hidden from the client.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr validator.ValidationErrors
	switch {
	case errors.As(err, &verr):
		problem(w, http.StatusBadRequest, "Validation Failed", verr.Error())
	case errors.Is(err, errBadRequest), errors.Is(err, budget.ErrMissingContext), errors.Is(err, budget.ErrUnknownMonth):
		problem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, errNotFound), errors.Is(err, budget.ErrUnknownItem):
		problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, budget.ErrConsolidatedView):
		problem(w, http.StatusConflict, "Read-only View", err.Error())
	case errors.Is(err, narrative.ErrSuperseded):
		problem(w, http.StatusConflict, "Superseded", err.Error())
	case errors.Is(err, errUnavailable):
		problem(w, http.StatusServiceUnavailable, "Unavailable", err.Error())
	default:
		s.logger.WithField("path", r.URL.Path).WithError(err).Error("request failed")
		problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/fisa/pkg/logger"
	"github.com/okian/fisa/pkg/metrics"
)

// scoreParam is the query/form field carrying the score.
const scoreParam = "value"

// ScoreHandler accepts score submissions. Scores are acknowledged and
// discarded; nothing is stored.
type ScoreHandler struct {
	log     logger.Logger
	metrics *metrics.Manager
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(l logger.Logger, m *metrics.Manager) *ScoreHandler {
	return &ScoreHandler{log: l, metrics: m}
}

// HandleScore handles POST /api/score?value=<int>. The value may also come
// from an application/x-www-form-urlencoded body.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.score"

	if err := r.ParseForm(); err != nil {
		h.reject(w, r, "malformed", WrapKind(op, ErrBadRequest, err))
		return
	}
	if _, ok := r.Form[scoreParam]; !ok {
		h.reject(w, r, "missing", WrapKind(op, ErrMissingParam, fmt.Errorf("required parameter %q is not present", scoreParam)))
		return
	}

	value, err := ParseScore(r.Form.Get(scoreParam))
	if err != nil {
		reason := "invalid"
		if errors.Is(err, ErrMissingParam) {
			reason = "missing"
		}
		h.reject(w, r, reason, WrapKind(op, ErrBadRequest, err))
		return
	}

	h.metrics.RecordScoreReceived()
	h.log.Debug(r.Context(), "score received", logger.Int("value", int(value)))
	writeText(w, http.StatusOK, "received:"+strconv.FormatInt(int64(value), 10))
}

func (h *ScoreHandler) reject(w http.ResponseWriter, r *http.Request, reason string, err error) {
	h.metrics.RecordScoreRejected(reason)
	h.log.Debug(r.Context(), "score rejected", logger.String("reason", reason), logger.Error(err))
	writeError(w, http.StatusBadRequest, "bad_request", err)
}

// ParseScore converts a raw parameter into a 32-bit score. Surrounding
// whitespace and a leading sign are accepted; anything else that is not a
// base-10 integer in range is rejected.
func ParseScore(raw string) (int32, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrMissingParam, scoreParam)
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a 32-bit integer, got %q", ErrInvalidParam, scoreParam, raw)
	}
	return int32(v), nil
}

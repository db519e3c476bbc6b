package api

import (
	"net/http"

	"github.com/okian/fisa/pkg/metrics"
)

// JumpPage is where GET / sends browsers.
const JumpPage = "/jump/index.html"

// HomeHandler redirects the root path to the jump page.
type HomeHandler struct {
	metrics *metrics.Manager
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(m *metrics.Manager) *HomeHandler {
	return &HomeHandler{metrics: m}
}

// HandleHome handles GET / with a 302 to JumpPage.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.metrics.RecordRedirect(JumpPage)
	http.Redirect(w, r, JumpPage, http.StatusFound)
}

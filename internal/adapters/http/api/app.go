package api

import (
	"net/http"
)

// Replies of the /app-prefixed routes.
const (
	AppGetReply  = "get 방식 요청의 응답 데이터 : 나는병길"
	AppPostReply = "post 방식 요청의 응답 데이터 : 나는태우"
)

// AppHandler serves the routes mounted under /app.
type AppHandler struct{}

// NewAppHandler creates a new /app handler.
func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

// HandleAppGet handles GET /app/get.
func (h *AppHandler) HandleAppGet(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, AppGetReply)
}

// HandleAppPost handles POST /app/post.
func (h *AppHandler) HandleAppPost(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, AppPostReply)
}

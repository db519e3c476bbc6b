package api

import (
	"net/http"
)

// Fixed sample replies.
const (
	GetReply        = "get 방식 요청의 응답 데이터 : 병길"
	PostPageReply   = "post 방식 요청의 응답 데이터 : 태우"
	PostSubmitReply = "post 방식 요청의 응답 데이터 : 나는태우"
)

// SampleHandler serves the fixed sample texts under /get and /post.
type SampleHandler struct{}

// NewSampleHandler creates a new sample handler.
func NewSampleHandler() *SampleHandler {
	return &SampleHandler{}
}

// HandleGet handles GET /get.
func (h *SampleHandler) HandleGet(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, GetReply)
}

// HandlePost handles GET /post.
func (h *SampleHandler) HandlePost(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, PostPageReply)
}

// HandlePostSubmit handles POST /post.
func (h *SampleHandler) HandlePostSubmit(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, PostSubmitReply)
}

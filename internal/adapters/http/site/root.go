// Package site serves the embedded jump page that / redirects to.
package site

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"
)

// ErrServe is returned when the embedded tree cannot be opened.
var ErrServe = errors.New("jump site serve failed")

// Prefix is the URL prefix the embedded tree is mounted under.
const Prefix = "/jump/"

// IndexPath is the page / redirects to.
const IndexPath = Prefix + "index.html"

// Register attaches the embedded jump page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Files live under static/jump so the URL path maps onto the FS as is.
	mux.Handle("GET "+Prefix, http.FileServer(FS()))
	mux.HandleFunc("GET "+IndexPath, handleIndex)
}

// handleIndex serves index.html directly; FileServer would answer it with
// a redirect to the directory.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	sub, err := Sub()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := fs.ReadFile(sub, IndexPath[1:])
	if err != nil {
		http.Error(w, ErrServe.Error(), http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(data))
}

package site

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// FS returns an http.FileSystem rooted at the embedded static directory.
func FS() http.FileSystem {
	sub, err := Sub()
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

// Sub returns the embedded static directory as an fs.FS.
func Sub() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServe, err)
	}
	return sub, nil
}

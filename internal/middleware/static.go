package middleware

import (
	"net/http"
	"os"
	"path/filepath"
)

// StaticFileServer serves files from the public directory and answers 404
// for anything that is not a regular file there. A directory is served by
// its index.html.
func StaticFileServer(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, "index.html")
		}
		ServeFile(w, r, path)
	})
}

// ServeFile writes the file at path directly. Unlike http.ServeFile it never
// redirects a request for .../index.html.
func ServeFile(w http.ResponseWriter, r *http.Request, path string) {
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=0")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

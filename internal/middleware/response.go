package middleware

import "net/http"

// writeHTML sends msg as-is, with no trailing newline.
func writeHTML(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}

package services

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruralpay/hacklab/internal/audit"
	"go.uber.org/zap"
)

// ListingKey unlocks the upload directory listing.
const ListingKey = "lab"

// FileService serves files with deliberately inconsistent containment:
// Download uses a string prefix check, Upload strips directories from the
// name, ListFiles is key gated and Include does no check at all.
type FileService struct {
	rootDir   string
	uploadDir string
	audit     audit.Sink
	validator *ValidationHelper
	logger    *zap.Logger
}

// UploadRequest represents an upload body
type UploadRequest struct {
	Filename string `json:"filename" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

func NewFileService(rootDir, uploadDir string, sink audit.Sink, logger *zap.Logger) *FileService {
	return &FileService{
		rootDir:   filepath.Clean(rootDir),
		uploadDir: filepath.Clean(uploadDir),
		audit:     sink,
		validator: NewValidationHelper(),
		logger:    logger.Named("files"),
	}
}

// Download streams a file from the upload directory
// @Summary Download file
// @Tags files
// @Produce octet-stream
// @Param name query string true "File name"
// @Success 200 {file} file
// @Failure 403 {string} string "Access denied"
// @Failure 404 {string} string "File not found"
// @Router /download [get]
func (s *FileService) Download(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	target := filepath.Join(s.uploadDir, name)
	if !strings.HasPrefix(target, s.uploadDir) {
		writeHTML(w, http.StatusForbidden, "Access denied")
		return
	}

	s.audit.Log("download requested: " + name + " from " + clientIP(r))

	data, err := os.ReadFile(target)
	if err != nil {
		writeHTML(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}

// Upload writes a file into the upload directory
// @Summary Upload file
// @Tags files
// @Accept json
// @Param request body UploadRequest true "File name and content"
// @Success 200 {string} string "Upload complete"
// @Failure 400 {string} string "Missing fields"
// @Failure 500 {string} string "Write failed"
// @Router /upload [post]
func (s *FileService) Upload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := DecodeRequest(w, r, &req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.ValidateStruct(&req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Missing fields")
		return
	}

	target := filepath.Join(s.uploadDir, filepath.Base(req.Filename))
	if err := os.WriteFile(target, []byte(req.Content), 0o644); err != nil {
		s.logger.Error("upload write failed", zap.String("target", target), zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "Write failed")
		return
	}

	s.audit.Log("uploaded: " + req.Filename + " from " + clientIP(r))
	writeHTML(w, http.StatusOK, "Upload complete")
}

// ListFiles lists the upload directory
// @Summary List uploads
// @Tags files
// @Produce html
// @Param k query string true "Listing key"
// @Success 200 {string} string "HTML listing"
// @Failure 403 {string} string "Listing requires key"
// @Router /files [get]
func (s *FileService) ListFiles(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("k") != ListingKey {
		writeHTML(w, http.StatusForbidden, "Listing requires key")
		return
	}

	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		s.logger.Error("list uploads", zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "Error listing files")
		return
	}

	var b strings.Builder
	b.WriteString("<h1>Files</h1><ul>")
	for _, e := range entries {
		b.WriteString("<li>" + e.Name() + "</li>")
	}
	b.WriteString("</ul>")
	writeHTML(w, http.StatusOK, b.String())
}

// Include serves any path relative to the service root
// @Summary Include file
// @Tags files
// @Param file query string true "Path relative to the service root"
// @Success 200 {file} file
// @Failure 400 {string} string "Missing file param"
// @Failure 404 {string} string "File not found"
// @Router /include [get]
func (s *FileService) Include(w http.ResponseWriter, r *http.Request) {
	file := r.URL.Query().Get("file")
	if file == "" {
		writeHTML(w, http.StatusBadRequest, "Missing file param")
		return
	}

	path := filepath.Join(s.rootDir, file)
	f, err := os.Open(path)
	if err != nil {
		writeHTML(w, http.StatusNotFound, "File not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		writeHTML(w, http.StatusNotFound, "File not found")
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

package httpapi

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"pantry-backend-go/internal/services"
)

// ServeUpload streams a stored blob back by its storage key.
func (s *Server) ServeUpload(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	file, err := services.OpenUpload(s.Config.UploadStoragePath, filename)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = io.Copy(w, file)
}

package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"pantry-backend-go/internal/models"
	"pantry-backend-go/internal/services"
)

const maxUploadBytes = 10 << 20

type TestimonialDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Profession string  `json:"profession"`
	Message    string  `json:"message"`
	ImagePath  *string `json:"image_path"`
}

func (s *Server) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	rows := []models.Testimonial{}
	if err := s.DB.Select(&rows, `
SELECT id, name, profession, body, image_path, created_at
FROM testimonials
ORDER BY created_at DESC
`); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]TestimonialDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, TestimonialDTO{
			ID:         row.ID,
			Name:       row.Name,
			Profession: row.Profession,
			Message:    row.Body,
			ImagePath:  row.ImagePath,
		})
	}
	WriteJSON(w, http.StatusOK, items)
}

// CreateTestimonial takes a multipart form: name, profession and message are
// required, the image is optional. The stored record references the blob by
// its storage key; the bytes live in the upload directory.
func (s *Server) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	profession := strings.TrimSpace(r.FormValue("profession"))
	body := strings.TrimSpace(r.FormValue("message"))
	if name == "" || profession == "" || body == "" {
		WriteError(w, http.StatusBadRequest, "Name, profession and message are required")
		return
	}

	var imagePath *string
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		key, saveErr := services.SaveUpload(s.Config.UploadStoragePath, header.Filename, file)
		_ = file.Close()
		if saveErr != nil {
			var serr services.ServiceError
			if errors.As(saveErr, &serr) {
				WriteError(w, serr.Status, serr.Message)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		path := "uploads/" + key
		imagePath = &path
	case errors.Is(err, http.ErrMissingFile):
		// no image supplied
	default:
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	id := uuid.NewString()
	_, err = s.DB.Exec(`
INSERT INTO testimonials (id, name, profession, body, image_path, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, id, name, profession, body, imagePath, time.Now().UTC())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"message": "Testimonial added successfully", "id": id})
}

// DeleteTestimonial removes the record only; an associated blob stays on
// disk (orphans are accepted).
func (s *Server) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	result, err := s.DB.Exec(`DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Testimonial deleted successfully"})
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"pantry-backend-go/internal/models"
)

// dateLayout is the minute-precision form the admin console displays.
const dateLayout = "2006-01-02 15:04"

type MessageCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MessageUpdateRequest struct {
	ID     string  `json:"id"`
	Status *string `json:"status"`
}

type MessageDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

func (s *Server) ListMessages(w http.ResponseWriter, r *http.Request) {
	rows := []models.Message{}
	if err := s.DB.Select(&rows, `
SELECT id, name, email, subject, body, status, created_at
FROM messages
ORDER BY created_at DESC
`); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]MessageDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, messageDTO(row))
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	body := strings.TrimSpace(req.Message)
	if name == "" || email == "" || body == "" {
		WriteError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}
	id := uuid.NewString()
	_, err := s.DB.Exec(`
INSERT INTO messages (id, name, email, subject, body, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, id, name, email, strings.TrimSpace(req.Subject), body, models.StatusUnread, time.Now().UTC())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"message": "Message sent successfully", "id": id})
}

// UpdateMessage changes the read status; a body without a status field
// leaves the record as it is.
func (s *Server) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	row := models.Message{}
	if err := s.DB.Get(&row, `
SELECT id, name, email, subject, body, status, created_at
FROM messages WHERE id = ?
`, req.ID); err != nil {
		WriteError(w, http.StatusNotFound, "Message not found")
		return
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if status != models.StatusUnread && status != models.StatusRead {
			WriteError(w, http.StatusBadRequest, "Invalid status")
			return
		}
		if _, err := s.DB.Exec(`UPDATE messages SET status = ? WHERE id = ?`, status, req.ID); err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		row.Status = status
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Message " + row.ID + " updated successfully",
		"status":  row.Status,
	})
}

func (s *Server) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	result, err := s.DB.Exec(`DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		WriteError(w, http.StatusNotFound, "Message not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}

func messageDTO(row models.Message) MessageDTO {
	return MessageDTO{
		ID:      row.ID,
		Name:    row.Name,
		Email:   row.Email,
		Subject: row.Subject,
		Message: row.Body,
		Date:    row.CreatedAt.Format(dateLayout),
		Status:  row.Status,
	}
}

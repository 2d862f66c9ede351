package httpapi

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"pantry-backend-go/internal/models"
)

type DonationCreateRequest struct {
	Name   string      `json:"name"`
	Amount interface{} `json:"amount"`
	Method string      `json:"method"`
	Ref    string      `json:"ref"`
	Notes  string      `json:"notes"`
	Date   string      `json:"date"`
}

type DonationDTO struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Ref    string  `json:"ref"`
	Notes  string  `json:"notes"`
	Date   string  `json:"date"`
}

func (s *Server) ListDonations(w http.ResponseWriter, r *http.Request) {
	rows := []models.Donation{}
	if err := s.DB.Select(&rows, `
SELECT id, name, amount, method, ref, notes, date, created_at
FROM donations
ORDER BY created_at
`); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]DonationDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, DonationDTO{
			ID:     row.ID,
			Name:   row.Name,
			Amount: row.Amount,
			Method: row.Method,
			Ref:    row.Ref,
			Notes:  row.Notes,
			Date:   row.Date,
		})
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req DonationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}
	amount, ok := parseAmount(req.Amount)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Amount must be a non-negative number")
		return
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}
	id := uuid.NewString()
	_, err := s.DB.Exec(`
INSERT INTO donations (id, name, amount, method, ref, notes, date, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, id, name, amount, strings.TrimSpace(req.Method), strings.TrimSpace(req.Ref), strings.TrimSpace(req.Notes), date, time.Now().UTC())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"message": "Donation added", "id": id})
}

func (s *Server) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	result, err := s.DB.Exec(`DELETE FROM donations WHERE id = ?`, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Donation deleted"})
}

// parseAmount accepts a JSON number or a numeric string. Negative and
// non-finite values are rejected before the record is persisted; ParseFloat
// would otherwise let "NaN" and "Inf" through.
func parseAmount(raw interface{}) (float64, bool) {
	var amount float64
	switch value := raw.(type) {
	case nil:
		return 0, false
	case float64:
		amount = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		amount = parsed
	default:
		return 0, false
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, false
	}
	return amount, true
}

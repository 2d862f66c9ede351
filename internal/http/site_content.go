package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"pantry-backend-go/internal/services"
)

type SiteContentUpdateRequest struct {
	Mission    string `json:"mission"`
	About      string `json:"about"`
	Address    string `json:"address"`
	Hours      string `json:"hours"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Facebook   string `json:"facebook"`
	DonateLink string `json:"donateLink"`
}

type SiteContentDTO struct {
	Mission    string `json:"mission"`
	About      string `json:"about"`
	Address    string `json:"address"`
	Hours      string `json:"hours"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Facebook   string `json:"facebook"`
	DonateLink string `json:"donate_link"`
}

func (s *Server) GetSiteContent(w http.ResponseWriter, r *http.Request) {
	content, err := services.EnsureSiteContent(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, SiteContentDTO{
		Mission:    content.Mission,
		About:      content.About,
		Address:    content.Address,
		Hours:      content.Hours,
		Email:      content.Email,
		Phone:      content.Phone,
		Facebook:   content.Facebook,
		DonateLink: content.DonateLink,
	})
}

// UpdateSiteContent upserts the singleton row; fields the request leaves out
// are stored empty rather than falling back to the defaults.
func (s *Server) UpdateSiteContent(w http.ResponseWriter, r *http.Request) {
	var req SiteContentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	now := time.Now().UTC()
	_, err := s.DB.Exec(`
INSERT INTO site_content (id, mission, about, address, hours, email, phone, facebook, donate_link, updated_at)
VALUES (1, '', '', '', '', '', '', '', '', ?)
ON CONFLICT (id) DO NOTHING
`, now)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	_, err = s.DB.Exec(`
UPDATE site_content
SET mission = ?, about = ?, address = ?, hours = ?, email = ?, phone = ?, facebook = ?, donate_link = ?, updated_at = ?
WHERE id = 1
`, req.Mission, req.About, req.Address, req.Hours, req.Email, req.Phone, req.Facebook, req.DonateLink, now)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Website content updated successfully"})
}

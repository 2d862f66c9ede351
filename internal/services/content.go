package services

import (
	"time"

	"github.com/google/uuid"

	"pantry-backend-go/internal/db"
	"pantry-backend-go/internal/models"
)

// Default site copy, used when the singleton row is first created.
const (
	DefaultMission    = "Our mission is to serve the community with compassion."
	DefaultAbout      = "The Braintree Community Food Pantry provides food assistance to local families in need."
	DefaultAddress    = "14 Storrs Ave Braintree, MA"
	DefaultHours      = "Saturday 10:00–12:00; Wednesday 4:00–6:00"
	DefaultEmail      = "braintreefoodpantrydirector@gmail.com"
	DefaultPhone      = "781-277-1609"
	DefaultFacebook   = "https://www.facebook.com/BraintreeFoodPantry"
	DefaultDonateLink = "#donate_info"
)

// EnsureSiteContent returns the singleton site_content row, creating it with
// the default copy on first access. The insert targets the fixed id so
// concurrent first reads race harmlessly: at most one insert wins, everyone
// reads the same row.
func EnsureSiteContent(database *db.DB) (models.SiteContent, error) {
	_, err := database.Exec(`
INSERT INTO site_content (id, mission, about, address, hours, email, phone, facebook, donate_link, updated_at)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING
`, DefaultMission, DefaultAbout, DefaultAddress, DefaultHours, DefaultEmail, DefaultPhone, DefaultFacebook, DefaultDonateLink, time.Now().UTC())
	if err != nil {
		return models.SiteContent{}, err
	}
	var content models.SiteContent
	err = database.Get(&content, `
SELECT id, mission, about, address, hours, email, phone, facebook, donate_link, updated_at
FROM site_content WHERE id = 1
`)
	return content, err
}

// EnsureAdminAccount seeds the single admin credential when the table is
// empty and credentials were supplied through configuration. Existing
// accounts are never touched.
func EnsureAdminAccount(database *db.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	var exists bool
	if err := database.Get(&exists, `SELECT EXISTS(SELECT 1 FROM admin_accounts)`); err != nil {
		return err
	}
	if exists {
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = database.Exec(`
INSERT INTO admin_accounts (id, username, password_hash, created_at)
VALUES (?, ?, ?, ?)
`, uuid.NewString(), username, hash, time.Now().UTC())
	return err
}

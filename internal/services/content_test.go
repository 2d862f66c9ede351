package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-backend-go/internal/db"
	"pantry-backend-go/internal/migrations"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Apply(database))
	return database
}

func TestEnsureSiteContentCreatesDefaults(t *testing.T) {
	database := newTestDB(t)

	content, err := EnsureSiteContent(database)
	require.NoError(t, err)
	assert.Equal(t, 1, content.ID)
	assert.Equal(t, DefaultMission, content.Mission)
	assert.Equal(t, DefaultDonateLink, content.DonateLink)
}

func TestEnsureSiteContentIsIdempotent(t *testing.T) {
	database := newTestDB(t)

	_, err := EnsureSiteContent(database)
	require.NoError(t, err)
	_, err = database.Exec(`UPDATE site_content SET mission = ? WHERE id = 1`, "changed")
	require.NoError(t, err)

	content, err := EnsureSiteContent(database)
	require.NoError(t, err)
	assert.Equal(t, "changed", content.Mission)

	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM site_content`))
	assert.Equal(t, 1, count)
}

func TestEnsureAdminAccountSeedsOnce(t *testing.T) {
	database := newTestDB(t)

	require.NoError(t, EnsureAdminAccount(database, "director", "first-pass"))
	require.NoError(t, EnsureAdminAccount(database, "director", "second-pass"))

	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM admin_accounts`))
	assert.Equal(t, 1, count)

	var hash string
	require.NoError(t, database.Get(&hash, `SELECT password_hash FROM admin_accounts WHERE username = ?`, "director"))
	assert.True(t, VerifyPassword("first-pass", hash))
	assert.False(t, VerifyPassword("second-pass", hash))
}

func TestEnsureAdminAccountSkipsEmptyCredentials(t *testing.T) {
	database := newTestDB(t)

	require.NoError(t, EnsureAdminAccount(database, "", ""))
	require.NoError(t, EnsureAdminAccount(database, "director", ""))
	require.NoError(t, EnsureAdminAccount(database, "", "pass"))

	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM admin_accounts`))
	assert.Equal(t, 0, count)
}

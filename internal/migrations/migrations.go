package migrations

import (
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"pantry-backend-go/internal/db"
)

//go:embed sql/*.sql
var files embed.FS

type migration struct {
	Name string
	SQL  string
}

// Apply runs every embedded migration that has not been recorded in
// schema_migrations yet, in version order. Statements are plain SQL that
// both supported dialects accept.
func Apply(database *db.DB) error {
	if err := ensureTable(database); err != nil {
		return err
	}
	migs, err := listMigrations()
	if err != nil {
		return err
	}
	applied, err := appliedMigrations(database)
	if err != nil {
		return err
	}
	for _, mig := range migs {
		if applied[mig.Name] {
			continue
		}
		if err := applyMigration(database, mig); err != nil {
			return err
		}
	}
	return nil
}

func ensureTable(database *db.DB) error {
	_, err := database.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  name TEXT PRIMARY KEY,
  applied_at TIMESTAMP NOT NULL
)`)
	return err
}

func listMigrations() ([]migration, error) {
	entries, err := files.ReadDir("sql")
	if err != nil {
		return nil, err
	}
	migs := make([]migration, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}
		content, err := files.ReadFile("sql/" + name)
		if err != nil {
			return nil, err
		}
		migs = append(migs, migration{Name: name, SQL: string(content)})
	}
	sort.Slice(migs, func(i, j int) bool {
		iVersion, iOk := parseVersionNumber(migs[i].Name)
		jVersion, jOk := parseVersionNumber(migs[j].Name)
		switch {
		case iOk && jOk && iVersion != jVersion:
			return iVersion < jVersion
		case iOk != jOk:
			return iOk
		default:
			return migs[i].Name < migs[j].Name
		}
	})
	return migs, nil
}

func appliedMigrations(database *db.DB) (map[string]bool, error) {
	rows := []string{}
	if err := database.Select(&rows, `SELECT name FROM schema_migrations`); err != nil {
		return nil, err
	}
	applied := map[string]bool{}
	for _, name := range rows {
		applied[name] = true
	}
	return applied, nil
}

func applyMigration(database *db.DB, mig migration) error {
	for _, stmt := range splitStatements(mig.SQL) {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("apply %s: %w", mig.Name, err)
		}
	}
	_, err := database.Exec(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`, mig.Name, time.Now().UTC())
	return err
}

// splitStatements breaks a migration file on trailing semicolons. None of the
// embedded migrations contain semicolons inside literals, so a plain split is
// enough for both drivers.
func splitStatements(raw string) []string {
	parts := strings.Split(raw, ";")
	stmts := make([]string, 0, len(parts))
	for _, part := range parts {
		stmt := strings.TrimSpace(part)
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func parseVersionNumber(name string) (int, bool) {
	if !strings.HasPrefix(name, "V") {
		return 0, false
	}
	parts := strings.SplitN(name[1:], "__", 2)
	if len(parts) == 0 {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	return value, true
}

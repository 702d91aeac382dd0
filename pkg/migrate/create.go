package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	nameSanitizeRe = regexp.MustCompile(`[^a-z0-9_]+`)
)

// CreateSQLMigration creates one goose SQL migration per driver, sharing a version:
//
//	<dir>/<driver>/<YYYYMMDDHHMMSS>_<name>.sql
func CreateSQLMigration(dir string, name string, now time.Time) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	safe := strings.ToLower(strings.TrimSpace(name))
	safe = strings.ReplaceAll(safe, " ", "_")
	safe = nameSanitizeRe.ReplaceAllString(safe, "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		return nil, fmt.Errorf("name %q results in empty sanitized filename", name)
	}

	version := now.UTC().Format("20060102150405")
	filename := fmt.Sprintf("%s_%s.sql", version, safe)

	template := fmt.Sprintf(`-- +goose Up
-- +goose StatementBegin
-- %s
-- +goose StatementEnd

-- +goose Down
-- +goose StatementBegin
-- rollback %s
-- +goose StatementEnd
`, safe, safe)

	paths := make([]string, 0, len(Drivers))
	for _, driver := range Drivers {
		driverDir := filepath.Join(dir, driver)
		if err := os.MkdirAll(driverDir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %q: %w", driverDir, err)
		}

		fullpath := filepath.Join(driverDir, filename)
		if _, err := os.Stat(fullpath); err == nil {
			return nil, fmt.Errorf("migration already exists: %s", fullpath)
		}
		paths = append(paths, fullpath)
	}

	for _, fullpath := range paths {
		if err := os.WriteFile(fullpath, []byte(template), 0o644); err != nil {
			return nil, fmt.Errorf("write migration %q: %w", fullpath, err)
		}
	}

	return paths, nil
}

package migrate

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
)

var (
	sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)
)

// ValidateDir validates the on-disk migration tree rooted at dir.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}
	return Validate(os.DirFS(dir))
}

// ValidateEmbedded validates the migrations compiled into the binary.
func ValidateEmbedded() error {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	return Validate(sub)
}

// Validate checks filenames and goose headers for every driver directory in fsys and
// requires all drivers to ship the same set of migrations.
func Validate(fsys fs.FS) error {
	var (
		reference       []string
		referenceDriver string
	)

	for _, driver := range Drivers {
		versions, err := validateDriver(fsys, driver)
		if err != nil {
			return err
		}

		if referenceDriver == "" {
			reference, referenceDriver = versions, driver
			continue
		}
		if strings.Join(versions, ",") != strings.Join(reference, ",") {
			return fmt.Errorf("migrations for %s (%v) do not match %s (%v)", driver, versions, referenceDriver, reference)
		}
	}
	return nil
}

func validateDriver(fsys fs.FS, driver string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, driver)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", driver, err)
	}

	seen := map[string]string{} // version -> filename
	versions := []string{}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("invalid migration filename %s/%s (expected YYYYMMDDHHMMSS_name.sql)", driver, name)
		}

		version := m[1]
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name)
		}
		seen[version] = name
		versions = append(versions, name)

		full := path.Join(driver, name)
		b, err := fs.ReadFile(fsys, full)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", full, err)
		}

		txt := string(b)
		if !strings.Contains(txt, "-- +goose Up") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Up\"", full)
		}
		if !strings.Contains(txt, "-- +goose Down") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Down\"", full)
		}
	}

	sort.Strings(versions)
	return versions, nil
}

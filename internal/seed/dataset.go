// Package seed describes the initial dataset and how it is loaded from YAML
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cuadrantes/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only dataset format version this build understands
const SupportedVersion = 1

//go:embed data/seed.yaml
var defaultDataset []byte

// Dataset is the versioned initial dataset
type Dataset struct {
	Version   int        `yaml:"version"`
	Roles     RoleSet    `yaml:"roles"`
	Users     []User     `yaml:"users"`
	Quadrants []Quadrant `yaml:"quadrants"`
}

// RoleSet is the staffing roster created for every venue:
// the named leadership roles followed by slots "1".."Numbered"
type RoleSet struct {
	Leadership []string `yaml:"leadership"`
	Numbered   int      `yaml:"numbered"`
}

// User is an account to create. Password is plaintext here and hashed on insert.
type User struct {
	Username string      `yaml:"username"`
	Password string      `yaml:"password"`
	Role     models.Role `yaml:"role"`
	Quadrant string      `yaml:"quadrant"`
}

// Quadrant lists the venue names of one sector in display order
type Quadrant struct {
	ID     string   `yaml:"id"`
	Venues []string `yaml:"venues"`
}

// Load reads the dataset at path, or the embedded default when path is empty
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Parse(defaultDataset)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return Parse(data)
}

// Default returns the embedded dataset
func Default() (*Dataset, error) {
	return Parse(defaultDataset)
}

// Parse decodes and validates a YAML dataset
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode seed dataset: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// Validate checks the dataset for structural errors.
// Duplicate venue slugs are not an error here; the loader skips them.
func (d *Dataset) Validate() error {
	if d.Version != SupportedVersion {
		return fmt.Errorf("unsupported seed dataset version %d, expected %d", d.Version, SupportedVersion)
	}
	if d.Roles.Numbered < 0 {
		return fmt.Errorf("numbered roles must not be negative")
	}
	if len(d.Roles.Leadership) == 0 && d.Roles.Numbered == 0 {
		return fmt.Errorf("seed dataset defines no roles")
	}

	seen := make(map[string]bool, len(d.Users))
	for i, u := range d.Users {
		if u.Username == "" {
			return fmt.Errorf("user %d: username is required", i)
		}
		if seen[u.Username] {
			return fmt.Errorf("user %q: duplicate username", u.Username)
		}
		seen[u.Username] = true

		if u.Password == "" {
			return fmt.Errorf("user %q: password is required", u.Username)
		}
		switch u.Role {
		case models.RoleAdmin:
			if u.Quadrant != "" {
				return fmt.Errorf("user %q: admin accounts have no quadrant", u.Username)
			}
		case models.RoleUser:
			if u.Quadrant == "" {
				return fmt.Errorf("user %q: quadrant is required for role user", u.Username)
			}
		default:
			return fmt.Errorf("user %q: invalid role %q", u.Username, u.Role)
		}
	}

	for i, q := range d.Quadrants {
		if q.ID == "" {
			return fmt.Errorf("quadrant %d: id is required", i)
		}
		for _, name := range q.Venues {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("quadrant %q: venue name is required", q.ID)
			}
		}
	}

	return nil
}

// RoleLabels returns the roster labels in creation order
func (d *Dataset) RoleLabels() []string {
	labels := make([]string, 0, len(d.Roles.Leadership)+d.Roles.Numbered)
	labels = append(labels, d.Roles.Leadership...)
	for i := 1; i <= d.Roles.Numbered; i++ {
		labels = append(labels, strconv.Itoa(i))
	}
	return labels
}

// Slug derives a venue id from its name: lowercase, spaces replaced with hyphens.
// Different names may produce the same slug.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/keepsake/pkg/errors"
	"github.com/arthur-debert/keepsake/pkg/types"
)

// Environment variable names
const (
	EnvCacheDir  = "KEEPSAKE_CACHE_DIR"
	EnvDataDir   = "KEEPSAKE_DATA_DIR"
	EnvConfigDir = "KEEPSAKE_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Roots holds one base directory per category. The directories need not
// exist; storage creates them on first write.
type Roots struct {
	Cache  string
	Data   string
	Config string
}

// Default derives the roots from the platform's XDG base locations joined
// with appID, honouring the KEEPSAKE_*_DIR overrides.
func Default(appID string) (Roots, error) {
	if err := validateAppID(appID); err != nil {
		return Roots{}, err
	}

	var r Roots
	var err error
	if r.Cache, err = resolve(EnvCacheDir, xdg.CacheHome, appID, types.Cache); err != nil {
		return Roots{}, err
	}
	if r.Data, err = resolve(EnvDataDir, xdg.DataHome, appID, types.Data); err != nil {
		return Roots{}, err
	}
	if r.Config, err = resolve(EnvConfigDir, xdg.ConfigHome, appID, types.Config); err != nil {
		return Roots{}, err
	}
	return r, r.Validate()
}

func resolve(envVar, base, appID string, c types.Category) (string, error) {
	if override := os.Getenv(envVar); override != "" {
		return ResolveDir(override)
	}
	if base == "" {
		return "", errors.Newf(errors.ErrBaseDir, "platform reports no %s base directory", c).
			WithDetail("category", c.String())
	}
	return filepath.Join(base, appID), nil
}

func validateAppID(appID string) error {
	switch {
	case strings.TrimSpace(appID) == "":
		return errors.New(errors.ErrInvalidInput, "application id must not be empty")
	case strings.ContainsAny(appID, `/\`), appID == ".", appID == "..":
		return errors.Newf(errors.ErrInvalidInput, "application id %q must be a single path element", appID)
	}
	return nil
}

// Validate checks that every root is set and absolute.
func (r Roots) Validate() error {
	for _, c := range types.Categories {
		root := r.For(c)
		if root == "" {
			return errors.Newf(errors.ErrInvalidInput, "%s root is empty", c).WithDetail("category", c.String())
		}
		if !filepath.IsAbs(root) {
			return errors.Newf(errors.ErrInvalidInput, "%s root %q is not absolute", c, root).
				WithDetail("category", c.String())
		}
	}
	return nil
}

// For returns the root for a category, or "" for an invalid category.
func (r Roots) For(c types.Category) string {
	switch c {
	case types.Cache:
		return r.Cache
	case types.Data:
		return r.Data
	case types.Config:
		return r.Config
	}
	return ""
}

// Join resolves identifier under root. Identifiers may name nested files
// ("profiles/work") but must stay inside root.
func Join(root, identifier string) (string, error) {
	if identifier == "" {
		return "", errors.New(errors.ErrInvalidInput, "identifier must not be empty")
	}
	if filepath.IsAbs(identifier) || strings.HasPrefix(identifier, "/") {
		return "", errors.Newf(errors.ErrInvalidInput, "identifier %q must be relative", identifier).
			WithDetail("identifier", identifier)
	}
	cleaned := filepath.Clean(filepath.FromSlash(identifier))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "identifier %q escapes its category root", identifier).
			WithDetail("identifier", identifier)
	}
	return filepath.Join(root, cleaned), nil
}

// ResolveDir expands a leading ~ and makes dir absolute. It is applied to
// every user-supplied root.
func ResolveDir(dir string) (string, error) {
	return absolute(expandHome(dir))
}

func absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}
	return filepath.Join(homeDir, path[1:])
}

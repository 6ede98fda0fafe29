package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/git"
)

// Result describes a project-local data directory.
type Result struct {
	ProjectRoot string // Directory containing .swatch/
	DataRoot    string // Absolute path to .swatch/
}

// DiscoverLocal finds a project-local .swatch/ directory by walking up from cwd.
// Returns nil if none is found.
func DiscoverLocal() (*Result, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverLocalFrom(cwd)
}

// DiscoverLocalFrom finds a project-local data directory starting from a
// given directory. A directory only counts once it holds a catalogs/ folder,
// so a stray empty .swatch/ doesn't shadow the user's global data.
func DiscoverLocalFrom(startDir string) (*Result, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := absStart
	for {
		dataRoot := filepath.Join(dir, config.LocalDataDir)
		if info, err := os.Stat(filepath.Join(dataRoot, config.CatalogsDir)); err == nil && info.IsDir() {
			return &Result{ProjectRoot: dir, DataRoot: dataRoot}, nil
		}

		// Move up to parent
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, no project found
			return nil, nil
		}
		dir = parent
	}
}

// LocalRootFor returns where `swatch init --local` should create .swatch/:
// the enclosing git repository root when there is one, else startDir.
func LocalRootFor(gitClient *git.Client, startDir string) (string, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	if gitClient != nil {
		if repoRoot, err := gitClient.GetRepoRootFrom(absStart); err == nil && repoRoot != "" {
			return filepath.Join(repoRoot, config.LocalDataDir), nil
		}
	}
	return filepath.Join(absStart, config.LocalDataDir), nil
}

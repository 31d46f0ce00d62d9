// ABOUTME: Discovers sample design files shipped with the calculator
// ABOUTME: Looks in ./samples or DRONECALC_SAMPLES_PATH

package samples

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/markalston/drone-design-calculator/cli/internal/designfile"
)

// SamplesPathEnvVar overrides the samples directory
const SamplesPathEnvVar = "DRONECALC_SAMPLES_PATH"

// SampleFile represents a discovered sample file
type SampleFile struct {
	Name string // Display name (e.g., "5in-freestyle")
	Path string // Full path to the file
}

// Discover finds all design files (.json, .yaml, .yml) in the given directory,
// sorted by name
func Discover(dir string) ([]SampleFile, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SampleFile{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []SampleFile
	for _, entry := range entries {
		if entry.IsDir() || !designfile.IsDesignFile(entry.Name()) {
			continue
		}
		files = append(files, SampleFile{
			Name: strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// FindSamplesDir locates the samples directory
// Checks in order:
// 1. DRONECALC_SAMPLES_PATH environment variable
// 2. ./samples/ relative to given base path
func FindSamplesDir(basePath string) string {
	if envPath := os.Getenv(SamplesPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	samplesDir := filepath.Join(basePath, "samples")
	if _, err := os.Stat(samplesDir); err == nil {
		return samplesDir
	}

	return ""
}

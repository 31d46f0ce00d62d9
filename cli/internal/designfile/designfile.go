// ABOUTME: Loads and saves drone design inputs as JSON or YAML files
// ABOUTME: Field names match the API; the rotor count default is applied on load

package designfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/markalston/drone-design-calculator/backend/models"
)

// Extensions lists the file extensions recognized as design files
var Extensions = []string{".json", ".yaml", ".yml"}

// IsDesignFile reports whether the path has a design file extension
func IsDesignFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Parse decodes a JSON or YAML design document. Unknown fields are rejected
// so a misspelled key does not silently fall back to zero.
func Parse(data []byte) (models.DesignInputs, error) {
	var in models.DesignInputs
	if strings.TrimSpace(string(data)) == "" {
		return in, fmt.Errorf("design file is empty")
	}
	if err := yaml.UnmarshalStrict(data, &in); err != nil {
		return models.DesignInputs{}, fmt.Errorf("invalid design file: %w", err)
	}
	in.ApplyDefaults()
	return in, nil
}

// Load reads and parses the design file at path
func Load(path string) (models.DesignInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.DesignInputs{}, fmt.Errorf("failed to read design file: %w", err)
	}
	in, err := Parse(data)
	if err != nil {
		return models.DesignInputs{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return in, nil
}

// Marshal encodes inputs as YAML, or as indented JSON when asJSON is set
func Marshal(in models.DesignInputs, asJSON bool) ([]byte, error) {
	if asJSON {
		data, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return yaml.Marshal(in)
}

// Save writes inputs to path, choosing JSON or YAML from the extension
func Save(path string, in models.DesignInputs) error {
	if !IsDesignFile(path) {
		return fmt.Errorf("unsupported design file extension %q (expected .json, .yaml, or .yml)", filepath.Ext(path))
	}

	data, err := Marshal(in, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return fmt.Errorf("failed to encode design: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write design file: %w", err)
	}
	return nil
}

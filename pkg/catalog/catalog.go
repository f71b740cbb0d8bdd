package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the top-level structure of a farm project file: the resource
// snapshot plus the project and upgrade catalogs.
type File struct {
	Version   string    `yaml:"version" json:"version"`
	Resources Resources `yaml:"resources" json:"resources"`
	Catalog   Catalog   `yaml:",inline" json:"catalog"`
}

// Load reads a farm project file from a YAML file. Duplicate mapping
// keys anywhere in the document are a configuration error, never a
// silent override.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading farm file: %w", err)
	}
	return Parse(data)
}

// LoadProject loads a farm project file from a project directory.
// It looks for farm.yaml in the given directory.
func LoadProject(projectDir string) (*File, error) {
	return Load(filepath.Join(projectDir, "farm.yaml"))
}

// Parse decodes farm file YAML. Exposed separately so the server can
// parse uploaded documents.
func Parse(data []byte) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing farm YAML: %w", err)
	}
	if err := checkDuplicateKeys(&root, ""); err != nil {
		return nil, err
	}

	var f File
	if err := root.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing farm YAML: %w", err)
	}
	applyDefaults(&f)
	return &f, nil
}

// checkDuplicateKeys walks the YAML document and rejects mappings that
// define the same key twice.
func checkDuplicateKeys(n *yaml.Node, path string) error {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			if err := checkDuplicateKeys(c, path); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		seen := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if prev, dup := seen[key.Value]; dup {
				return fmt.Errorf("duplicate key %q at line %d (first defined at line %d)",
					joinPath(path, key.Value), key.Line, prev)
			}
			seen[key.Value] = key.Line
			if err := checkDuplicateKeys(val, joinPath(path, key.Value)); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			if err := checkDuplicateKeys(c, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// applyDefaults fills fields the YAML may omit.
func applyDefaults(f *File) {
	if f.Resources.WaterCostFactor == 0 {
		f.Resources.WaterCostFactor = 1.0
	}
	for _, u := range f.Catalog.Upgrades {
		if u.SeasonalBenefits == nil {
			u.SeasonalBenefits = map[Season]float64{
				Spring: 1.0, Summer: 1.0, Fall: 1.0, Winter: 1.0,
			}
		}
	}
	for _, p := range f.Catalog.Projects {
		if p.ClimateControlledBenefit == 0 {
			p.ClimateControlledBenefit = 1.0
		}
	}
}

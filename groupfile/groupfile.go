package groupfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azhovan/envgroup"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures manifest loading behavior.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, a missing file causes an error. Default: false
	// (returns an empty slice).
	Required bool

	// GroupOptions are passed through to every declared group
	// (e.g. envgroup.WithLookup for tests).
	GroupOptions []envgroup.Option
}

// manifest mirrors the file layout. The same shape parses from all three
// formats.
type manifest struct {
	Groups []groupDecl `yaml:"groups" json:"groups" toml:"groups"`
}

type groupDecl struct {
	Name    string   `yaml:"name" json:"name" toml:"name"`
	Members []string `yaml:"members" json:"members" toml:"members"`
}

// Load reads a manifest file and declares one group per entry, preserving
// file order. Member order within a group is preserved too.
func Load(path string, opts Options) ([]*envgroup.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return nil, fmt.Errorf("required group manifest not found: %s: %w", path, err)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("read group manifest %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	var m manifest
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse YAML manifest %s: %w", path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse JSON manifest %s: %w", path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse TOML manifest %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s (supported: yaml, json, toml)", format)
	}

	groups := make([]*envgroup.Group, 0, len(m.Groups))
	for _, decl := range m.Groups {
		if err := checkDuplicates(decl); err != nil {
			return nil, fmt.Errorf("group manifest %s: %w", path, err)
		}

		g, err := envgroup.New(decl.Name, decl.Members, opts.GroupOptions...)
		if err != nil {
			return nil, fmt.Errorf("group manifest %s: declare %q: %w", path, decl.Name, err)
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// checkDuplicates rejects repeated member identifiers within one group
// declaration. Key collisions between distinct identifiers are the
// declarer's responsibility, as with envgroup.New.
func checkDuplicates(decl groupDecl) error {
	seen := make(map[string]bool, len(decl.Members))
	for _, member := range decl.Members {
		if seen[member] {
			return fmt.Errorf("group %q declares member %q twice", decl.Name, member)
		}
		seen[member] = true
	}
	return nil
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}

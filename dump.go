package envgroup

import (
	"encoding/json"
	"fmt"
	"io"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	asJSON bool   // Output as JSON instead of KEY=value lines
	indent string // Indentation for JSON output (default: "  ")
}

// AsJSON outputs the group as a JSON object keyed by canonical key.
// Absent members are null.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// DumpEffective writes the group's members and their current environment
// values, one member per line in declaration order. Present values render as
// KEY=value, missing ones as KEY=<absent>. Each member costs one environment
// read per call; nothing is cached.
func DumpEffective(w io.Writer, g *Group, opts ...DumpOption) error {
	if g == nil {
		return fmt.Errorf("group is nil")
	}

	cfg := dumpConfig{indent: "  "}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.asJSON {
		return dumpJSON(w, g, cfg.indent)
	}

	for _, v := range g.Members() {
		value, ok := v.Lookup()
		if !ok {
			value = "<absent>"
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", v.Key(), value); err != nil {
			return fmt.Errorf("write dump: %w", err)
		}
	}
	return nil
}

func dumpJSON(w io.Writer, g *Group, indent string) error {
	values := make(map[string]*string, len(g.members))
	for _, v := range g.Members() {
		if value, ok := v.Lookup(); ok {
			values[v.Key()] = &value
		} else {
			values[v.Key()] = nil
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(values); err != nil {
		return fmt.Errorf("encode dump: %w", err)
	}
	return nil
}

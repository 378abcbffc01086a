package envgroup

import (
	"errors"
	"testing"
)

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		member   string
		expected string
	}{
		{
			name:     "trailing Env word stripped",
			group:    "LocationsEnv",
			member:   "Folder",
			expected: "LOCATIONS_FOLDER",
		},
		{
			name:     "no Env suffix, no stripping",
			group:    "Locations",
			member:   "Folder",
			expected: "LOCATIONS_FOLDER",
		},
		{
			name:     "multi-word member",
			group:    "SettingsEnv",
			member:   "ResolutionWidth",
			expected: "SETTINGS_RESOLUTION_WIDTH",
		},
		{
			name:     "multi-word group",
			group:    "MyServiceEnv",
			member:   "Port",
			expected: "MY_SERVICE_PORT",
		},
		{
			name:     "suffix check is on the tokenized word, not a substring",
			group:    "MyEnvironment",
			member:   "Folder",
			expected: "MY_ENVIRONMENT_FOLDER",
		},
		{
			name:     "only one trailing Env word stripped",
			group:    "LocationsEnvEnv",
			member:   "Folder",
			expected: "LOCATIONS_ENV_FOLDER",
		},
		{
			name:     "Env inside the group name kept",
			group:    "EnvLocations",
			member:   "Folder",
			expected: "ENV_LOCATIONS_FOLDER",
		},
		{
			name:     "underscored identifiers",
			group:    "An_Env",
			member:   "Team_Jaws",
			expected: "AN_TEAM_JAWS",
		},
		{
			name:     "lowercase suffix not stripped",
			group:    "Locationsenv",
			member:   "Folder",
			expected: "LOCATIONSENV_FOLDER",
		},
		{
			name:     "short group",
			group:    "En",
			member:   "Kappa",
			expected: "EN_KAPPA",
		},
		{
			name:     "group that is only the suffix strips to nothing",
			group:    "Env",
			member:   "Folder",
			expected: "_FOLDER",
		},
		{
			name:     "acronym run splits per capital",
			group:    "ABCdef",
			member:   "Ghi",
			expected: "A_B_CDEF_GHI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := BuildKey(tt.group, tt.member)
			if err != nil {
				t.Fatalf("BuildKey(%q, %q) returned error: %v", tt.group, tt.member, err)
			}
			if key != tt.expected {
				t.Errorf("BuildKey(%q, %q) = %q, want %q", tt.group, tt.member, key, tt.expected)
			}
		})
	}
}

func TestBuildKey_InvalidIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		group  string
		member string
	}{
		{name: "empty group", group: "", member: "Folder"},
		{name: "empty member", group: "LocationsEnv", member: ""},
		{name: "whitespace group", group: "   ", member: "Folder"},
		{name: "underscores-only member", group: "LocationsEnv", member: "___"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildKey(tt.group, tt.member)
			if err == nil {
				t.Fatalf("BuildKey(%q, %q) expected error, got nil", tt.group, tt.member)
			}

			var invalid *InvalidIdentifierError
			if !errors.As(err, &invalid) {
				t.Errorf("BuildKey(%q, %q) error = %T, want *InvalidIdentifierError", tt.group, tt.member, err)
			}
		})
	}
}

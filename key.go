package envgroup

import (
	"strings"

	"github.com/Azhovan/envgroup/internal/words"
)

// envSuffix is the reserved trailing word on group identifiers.
// "LocationsEnv" names the same group as "Locations".
const envSuffix = "Env"

// BuildKey derives the canonical environment-variable name for a
// (group, member) pair. Both identifiers are split into words on
// capitalization boundaries; if the group's last word is exactly "Env" it is
// dropped (once, case-sensitively — the check is against the tokenized word,
// so "MyEnvironment" is untouched). The remaining words are uppercased and
// joined with underscores, group words first.
//
//	BuildKey("LocationsEnv", "Folder")  = "LOCATIONS_FOLDER"
//	BuildKey("SettingsEnv", "ResolutionWidth") = "SETTINGS_RESOLUTION_WIDTH"
//
// Returns *InvalidIdentifierError if either identifier yields no words.
func BuildKey(group, member string) (string, error) {
	groupWords := words.Split(group)
	if len(groupWords) == 0 {
		return "", &InvalidIdentifierError{Identifier: group}
	}

	memberWords := words.Split(member)
	if len(memberWords) == 0 {
		return "", &InvalidIdentifierError{Identifier: member}
	}

	if groupWords[len(groupWords)-1] == envSuffix {
		groupWords = groupWords[:len(groupWords)-1]
	}

	return joinUpper(groupWords) + "_" + joinUpper(memberWords), nil
}

func joinUpper(ws []string) string {
	upper := make([]string, len(ws))
	for i, w := range ws {
		upper[i] = strings.ToUpper(w)
	}
	return strings.Join(upper, "_")
}

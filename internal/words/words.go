package words

import (
	"strings"
	"unicode"
)

// Split breaks an identifier into its constituent words.
// Leading and trailing whitespace is trimmed and all underscores are removed
// before scanning. A new word starts at every uppercase ASCII letter; the
// first character always starts the first word, whatever its case.
// Examples:
//   - "TeamJaws" → ["Team", "Jaws"]
//   - "fooBar" → ["foo", "Bar"]
//   - "ABCdef" → ["A", "B", "Cdef"]
//   - "Team_Jaws" → ["Team", "Jaws"]
//
// Consecutive capitals each become a single-letter word. Acronyms are not
// regrouped. Concatenating the result reproduces the underscore-stripped
// input exactly.
func Split(raw string) []string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "_", "")

	var result []string
	var current strings.Builder
	for _, r := range cleaned {
		if unicode.IsUpper(r) && current.Len() > 0 {
			result = append(result, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}
	return result
}

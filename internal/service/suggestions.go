package service

import "unicode/utf8"

// Canned troubleshooting hints shown next to the creation form once
// the description is long enough. Real suggestion generation is out
// of scope; this stays a static stub.
var cannedSuggestions = []string{
	"Check that the power cable is connected properly",
	"Restart the equipment and try again",
	"Check for pending system updates",
	"Confirm that the user has the required permissions",
}

const suggestionMinDescriptionLen = 20

// Suggestions returns the canned hints when the description exceeds
// the minimum length in characters, nil otherwise.
func Suggestions(description string) []string {
	if utf8.RuneCountInString(description) <= suggestionMinDescriptionLen {
		return nil
	}
	out := make([]string, len(cannedSuggestions))
	copy(out, cannedSuggestions)
	return out
}

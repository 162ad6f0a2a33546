package utils

import "github.com/microcosm-cc/bluemonday"

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all HTML from client-supplied text fields before they
// are persisted.
func SanitizeText(s string) string {
	return strictPolicy.Sanitize(s)
}

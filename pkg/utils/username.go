package utils

import "regexp"

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// ValidateUsername enforces 3-30 chars of letters, numbers, underscores
// or hyphens. No spaces or @ so usernames never collide with emails.
func ValidateUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

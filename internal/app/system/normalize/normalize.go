// Package normalize holds small canonicalization helpers applied before
// anything is persisted. Emails are the identity key, so they must be
// compared and stored in exactly one form.
package normalize

import "strings"

// Email lowercases and trims an email address. Returns "" for blank input.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace from a name component, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Package naming holds the pluggable case-style checkers applied to record
// keys. Adding a convention means registering a checker here; the validation
// engine's contract does not change.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// Checker reports whether a field name complies with a case convention.
type Checker func(name string) bool

var checkers = map[string]Checker{
	"snake_case": IsSnakeCase,
	"camelCase":  IsCamelCase,
}

// CheckerFor returns the checker registered for a convention. Unknown
// conventions (including "mixed") have no checker; callers treat that as a
// forward-compatible no-op.
func CheckerFor(convention string) (Checker, bool) {
	c, ok := checkers[convention]
	return c, ok
}

// snakeRe: runs of lowercase letters/digits separated by single underscores.
// No leading, trailing, or doubled underscores, no uppercase.
var snakeRe = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// IsSnakeCase reports whether a name is valid snake_case.
func IsSnakeCase(name string) bool {
	return snakeRe.MatchString(name)
}

// IsCamelCase reports whether a name is valid camelCase: a lowercase first
// word followed by capitalized alphanumeric words, no separators.
func IsCamelCase(name string) bool {
	if name == "" || strings.ContainsAny(name, "_-") {
		return false
	}
	first := []rune(name)[0]
	if !unicode.IsLower(first) && !unicode.IsDigit(first) {
		return false
	}
	for _, word := range camelcase.Split(name) {
		for _, r := range word {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

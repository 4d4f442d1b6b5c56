package accounts

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegexp = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidateEmail reports whether s has a local@domain.tld shape. No DNS or
// deliverability check is attempted.
func ValidateEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// Password policy violations, in the order the rules are checked.
const (
	ViolationTooShort  = "min 8 characters"
	ViolationUppercase = "at least 1 uppercase letter"
	ViolationLowercase = "at least 1 lowercase letter"
	ViolationDigit     = "at least 1 digit"
	ViolationSymbol    = "at least 1 special character"
)

const passwordSymbols = "!@#$%^&*()_+-=[]{};:\"\\|,.<>/?"

// ValidatePassword checks s against the password policy. Each rule is
// checked independently; the violated ones are returned by name. An empty
// result means the password is acceptable.
func ValidatePassword(s string) []string {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	var violations []string
	if len(s) < 8 {
		violations = append(violations, ViolationTooShort)
	}
	if !hasUpper {
		violations = append(violations, ViolationUppercase)
	}
	if !hasLower {
		violations = append(violations, ViolationLowercase)
	}
	if !hasDigit {
		violations = append(violations, ViolationDigit)
	}
	if !hasSymbol {
		violations = append(violations, ViolationSymbol)
	}
	return violations
}

// FormatName normalizes a display name: surrounding whitespace is trimmed,
// each word gets an uppercase first letter and lowercase rest, and words are
// rejoined with single spaces.
func FormatName(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

package utils

import (
	"fmt"
	rndm "math/rand"
	"regexp"
	"strings"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Validation ---

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

var iataRe = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateIATACode reports whether code is a 3-letter uppercase airport code.
func ValidateIATACode(code string) bool {
	return iataRe.MatchString(code)
}

var destStripRe = regexp.MustCompile(`[^\w\s,\-]`)

// NormalizeDestination produces the canonical catalog key for a free-text
// destination: stripped of stray punctuation, single-spaced, lower-cased.
func NormalizeDestination(destination string) string {
	s := destStripRe.ReplaceAllString(destination, "")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// --- Display Formatting ---

// FormatDuration renders minutes as "2h 30m" / "2h" / "45m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		if mins > 0 {
			return fmt.Sprintf("%dh %dm", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", mins)
}

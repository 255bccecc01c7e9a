package validation

import (
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// isLength reports whether s is between min and max characters long,
// counting runes rather than bytes.
func isLength(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func isEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// normalized substitutes an empty value with the empty string so the
// length checks behave consistently for absent fields.
func normalized(s string) string {
	if IsEmpty(s) {
		return ""
	}
	return s
}

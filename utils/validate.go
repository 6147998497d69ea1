package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// pageIDPattern matches the full page identifier: letters, digits,
// hyphen and underscore only.
var pageIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// NormalizeIdentifier lowercases and trims a path identifier. Counter
// keys are always compared and stored in this form.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateUser checks a normalized user identifier: non-empty,
// alphanumeric, at most 10 characters.
func ValidateUser(user string) error {
	if err := validate.Var(user, "required,alphanum,max=10"); err != nil {
		return fmt.Errorf("invalid user %q: %w", user, err)
	}
	return nil
}

// ValidatePageID checks a normalized page identifier: non-empty, at
// most 50 characters, letters/digits/hyphen/underscore only.
func ValidatePageID(pageID string) error {
	if pageID == "" {
		return fmt.Errorf("page id is required")
	}
	if len(pageID) > 50 {
		return fmt.Errorf("page id %q exceeds 50 characters", pageID)
	}
	if !pageIDPattern.MatchString(pageID) {
		return fmt.Errorf("page id %q contains invalid characters", pageID)
	}
	return nil
}

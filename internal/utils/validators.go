package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidFormat     = errors.New("color must be a HEX code such as #fff or #1a2b3c")
	ErrInvalidCharacters = errors.New("the field must consist of Latin or Cyrillic letters, hyphens or spaces")
	ErrReservedValue     = errors.New(`username cannot be "me"`)
	ErrInvalidUsername   = errors.New("username may contain only letters, digits and @/./+/-/_")
	ErrInvalidSlug       = errors.New("slug may contain only letters, digits, hyphens and underscores")

	tagColorPattern    = regexp.MustCompile(`^#(?:[0-9a-f]{3}|[0-9a-f]{6})$`)
	lettersOnlyPattern = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё\- ]+$`)
	usernamePattern    = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)
	slugPattern        = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

const reservedUsername = "me"

// NormalizeTagColor returns the form a tag color is stored in.
func NormalizeTagColor(s string) string {
	return strings.ToLower(s)
}

func ValidateTagColor(s string) error {
	if !tagColorPattern.MatchString(NormalizeTagColor(s)) {
		return ErrInvalidFormat
	}
	return nil
}

func ValidateLettersOnly(s string) error {
	if utf8.RuneCountInString(s) < 2 || !lettersOnlyPattern.MatchString(s) {
		return ErrInvalidCharacters
	}
	return nil
}

func ValidateReservedUsername(s string) error {
	if strings.EqualFold(s, reservedUsername) {
		return ErrReservedValue
	}
	return nil
}

func ValidateUsername(s string) error {
	if !usernamePattern.MatchString(s) {
		return ErrInvalidUsername
	}
	return nil
}

func ValidateSlug(s string) error {
	if !slugPattern.MatchString(s) {
		return ErrInvalidSlug
	}
	return nil
}

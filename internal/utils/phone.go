package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhone cleans a phone number and validates it against the
// E.164 format the voice gateway expects. Numbers without a leading
// plus are rejected rather than guessed at; the country code of a bare
// national number is unknowable here.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")

	if !e164Pattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format: must be E.164 (e.g. +919876543210)")
	}

	return stripped, nil
}

// IsValidEmail performs a light sanity check on an email address
func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

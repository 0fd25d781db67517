package service

import (
	"fmt"
	"strings"

	"notedesk/internal/apperr"
)

// requiredText trims the value and rejects blank input. Required names
// and titles pass through here before anything reaches the store, so a
// whitespace-only field never survives as a record.
func requiredText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s must not be blank", apperr.ErrValidation, field)
	}
	return trimmed, nil
}

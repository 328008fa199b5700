package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"team-directory/internal/entities"
)

// Column widths of the schema.
const (
	maxTeamNameLen    = 120
	maxMemberNameLen  = 120
	maxMemberEmailLen = 255
	maxMemberRoleLen  = 120
)

const (
	msgTeamNameRequired   = "Team name is required."
	msgNameEmailRequired  = "Both name and email are required."
	msgOrganizationNeeded = "organization required"
	msgImportFailed       = "failed to import data."
)

func tooLong(field string, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return entities.Validation(fmt.Sprintf("%s must be at most %d characters.", field, limit))
	}
	return nil
}

// optional returns the trimmed value of p, or fallback when p is nil.
func optional(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return strings.TrimSpace(*p)
}

func validateTeamName(name string) error {
	if name == "" {
		return entities.Validation(msgTeamNameRequired)
	}
	return tooLong("Team name", name, maxTeamNameLen)
}

func validateMember(name, email, role string) error {
	if name == "" || email == "" {
		return entities.Validation(msgNameEmailRequired)
	}
	if err := tooLong("Name", name, maxMemberNameLen); err != nil {
		return err
	}
	if err := tooLong("Email", email, maxMemberEmailLen); err != nil {
		return err
	}
	return tooLong("Role", role, maxMemberRoleLen)
}

package domain

import "github.com/arenaku/courtbook/internal/utils"

// Trimmed returns a copy of the form with whitespace-trimmed fields and a
// digit-normalized phone number. The required-field invariant (non-empty
// name and phone) is checked against this copy, never the raw input.
func (f FormInput) Trimmed() FormInput {
	return FormInput{
		Name:         utils.NormalizeString(f.Name),
		Phone:        utils.NormalizePhone(f.Phone),
		Email:        utils.NormalizeString(f.Email),
		TeamName:     utils.NormalizeString(f.TeamName),
		FindOpponent: f.FindOpponent,
	}
}

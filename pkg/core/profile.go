package core

import "fmt"

// Canonical filter names. The standard catalog in pkg/filters registers
// its steps under these names.
const (
	FilterFixTypos               = "fix_typos"
	FilterFixUserIDs             = "fix_userids"
	FilterOdourLiteralsToNumbers = "odour_literals_to_numbers"
	FilterAddAnalystFields       = "add_analyst_fields"
	FilterTypeCasting            = "type_casting"
)

// Profile names a fixed ordered filter sequence run at dataset
// construction. Two dataset kinds differing only by filter list are
// modeled as one parametrized constructor taking a Profile.
type Profile string

const (
	// ProfileObservation normalizes a raw OdourCollect observations export:
	// typo fixes, user id injection, literal recoding, analyst fields,
	// then type casting. Order is significant.
	ProfileObservation Profile = "observation"
	// ProfileAnalysis assumes the table already has the extended,
	// literal-free schema and only casts types.
	ProfileAnalysis Profile = "analysis"
)

// FilterList returns the ordered filter names for the profile, or nil for
// an unknown profile.
func (p Profile) FilterList() []string {
	switch p {
	case ProfileObservation:
		return []string{
			FilterFixTypos,
			FilterFixUserIDs,
			FilterOdourLiteralsToNumbers,
			FilterAddAnalystFields,
			FilterTypeCasting,
		}
	case ProfileAnalysis:
		return []string{FilterTypeCasting}
	}
	return nil
}

// ParseProfile converts a user-supplied string into a Profile.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case ProfileObservation, ProfileAnalysis:
		return Profile(s), nil
	}
	return "", fmt.Errorf("unknown profile %q (available: %s, %s)", s, ProfileObservation, ProfileAnalysis)
}

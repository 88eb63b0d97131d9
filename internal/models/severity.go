package models

import "fmt"

// SeverityCategory is the ordinal burnout tier derived from a burnout score.
// The zero value is not a valid category.
type SeverityCategory int

const (
	SeverityLow SeverityCategory = iota + 1
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

// AllSeverities lists the categories in ascending order.
var AllSeverities = []SeverityCategory{SeverityLow, SeverityModerate, SeverityHigh, SeverityCritical}

func (c SeverityCategory) String() string {
	switch c {
	case SeverityLow:
		return "low"
	case SeverityModerate:
		return "moderate"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("SeverityCategory(%d)", int(c))
	}
}

// Valid reports whether c is one of the four known categories.
func (c SeverityCategory) Valid() bool {
	return c >= SeverityLow && c <= SeverityCritical
}

// ParseSeverity converts a category name back into a SeverityCategory.
func ParseSeverity(s string) (SeverityCategory, error) {
	for _, c := range AllSeverities {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown severity category: %q", s)
}

func (c SeverityCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid severity category: %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *SeverityCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

package service

import "fmt"

// ReferentialPolicy decides what happens to dependent rows when their
// teacher, student or course is deleted. The original system silently
// orphaned dependents, so that is the default; restrict and cascade are
// offered as explicit alternatives.
type ReferentialPolicy string

const (
	// PolicyOrphan deletes the row and leaves dependents in place.
	PolicyOrphan ReferentialPolicy = "orphan"
	// PolicyRestrict refuses the delete while dependents exist.
	PolicyRestrict ReferentialPolicy = "restrict"
	// PolicyCascade deletes dependents in the same transaction.
	PolicyCascade ReferentialPolicy = "cascade"
)

// ParseReferentialPolicy maps a configuration string to a policy,
// falling back to orphan for empty input.
func ParseReferentialPolicy(s string) (ReferentialPolicy, error) {
	switch ReferentialPolicy(s) {
	case PolicyOrphan, PolicyRestrict, PolicyCascade:
		return ReferentialPolicy(s), nil
	case "":
		return PolicyOrphan, nil
	default:
		return "", fmt.Errorf("unknown referential policy %q", s)
	}
}

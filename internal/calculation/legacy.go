package calculation

import (
	"strings"

	"github.com/paystruct/salary-breakdown/internal/domain"
)

// Structures authored before roles existed mark the basic salary and the
// balancer by name only. The helpers below recognise those names, ignoring
// case and surrounding space; nothing else in the calculator looks at
// component names.
const (
	legacyBasicName    = "basic salary"
	legacyBalancerName = "special allowance"
)

// IsLegacyBalancerName reports whether name is the conventional balancer label.
func IsLegacyBalancerName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), legacyBalancerName)
}

// IsLegacyBasicName reports whether name is the conventional basic salary label.
func IsLegacyBasicName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), legacyBasicName)
}

// isBalancerCandidate reports whether an earning is flagged as, or named like, a balancer.
func isBalancerCandidate(c domain.Component) bool {
	return c.Balancer() || (c.IsEarning() && IsLegacyBalancerName(c.Name))
}

// selectBalancer returns the index of the balancer among earnings, or -1.
// A flagged component wins; without one, the first earning carrying the
// legacy balancer name is used.
func selectBalancer(earnings []domain.Component) int {
	for i, c := range earnings {
		if c.Balancer() {
			return i
		}
	}
	for i, c := range earnings {
		if IsLegacyBalancerName(c.Name) {
			return i
		}
	}
	return -1
}

// MigrateLegacyRoles returns a copy of the structure with explicit roles for
// components that only carry the conventional names. Components that already
// have a role are left alone, and only the first balancer-named earning is
// promoted when the structure has no flagged balancer.
func MigrateLegacyRoles(s *domain.Structure) *domain.Structure {
	out := s.Clone()
	hasBalancer := false
	for _, c := range out.Components {
		if c.Balancer() {
			hasBalancer = true
			break
		}
	}
	for i := range out.Components {
		c := &out.Components[i]
		if c.Role != "" || !c.IsEarning() {
			continue
		}
		switch {
		case IsLegacyBasicName(c.Name):
			c.Role = domain.RoleBasic
			c.SystemLocked = true
		case IsLegacyBalancerName(c.Name) && !hasBalancer:
			c.Role = domain.RoleBalancer
			c.SystemLocked = true
			hasBalancer = true
		}
	}
	return out
}

package domain

import "errors"

var (
	ErrNegativeBalancer     = errors.New("balancer component would be negative")
	ErrMultipleBalancers    = errors.New("structure has more than one balancer component")
	ErrDuplicateComponentID = errors.New("duplicate component id")
	ErrInvalidComponent     = errors.New("invalid component")
	ErrStructureNotFound    = errors.New("salary structure not found")
	ErrStructureMismatch    = errors.New("assignment does not target this structure")
	ErrInvalidBreakdown     = errors.New("breakdown is not valid for submission")
)

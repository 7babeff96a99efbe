package service

// Outcome is a normal, non-error result of an operation. Several outcomes
// (Conflict, AlreadyExists, NotFound, AlreadyAdmin) report that nothing changed.
type Outcome string

const (
	OutcomeCreated       Outcome = "created"
	OutcomeConflict      Outcome = "conflict"
	OutcomeAlreadyExists Outcome = "already_exists"
	OutcomeRemoved       Outcome = "removed"
	OutcomeNotFound      Outcome = "not_found"
	OutcomePromoted      Outcome = "promoted"
	OutcomeAlreadyAdmin  Outcome = "already_admin"
)

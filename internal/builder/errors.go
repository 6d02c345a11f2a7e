package builder

import (
	"fmt"

	"github.com/vk/netgraph/internal/nodeid"
)

// UnresolvedReferenceError reports a reaction participant naming a species
// that was never registered.
type UnresolvedReferenceError struct {
	Reaction string
	// Role is "reactant", "product" or "modifier".
	Role    string
	Species string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("reaction '%s' references unknown %s species '%s'", e.Reaction, e.Role, e.Species)
}

// MissingCompartmentError reports an entity whose compartment cannot be
// resolved: its declared compartment was never registered, it declared none,
// or it needed the fallback compartment and none exists.
type MissingCompartmentError struct {
	// Kind is "species" or "reaction".
	Kind string
	ID   string
	// Compartment is the declared compartment, empty if none was declared.
	Compartment string
	// Fallback is set when a reaction without a compartment found no
	// registered compartment to fall back to.
	Fallback bool
}

func (e *MissingCompartmentError) Error() string {
	switch {
	case e.Fallback:
		return fmt.Sprintf("could not determine compartment for %s '%s': no compartment has been registered", e.Kind, e.ID)
	case e.Compartment == "":
		return fmt.Sprintf("%s '%s' declares no compartment", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s '%s' refers to unknown compartment '%s'", e.Kind, e.ID, e.Compartment)
}

// InvalidIDError reports an id that cannot be used as a path segment: it is
// empty, "." or "..", or contains the path separator.
type InvalidIDError struct {
	Kind string
	ID   string
	Err  error
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid %s id '%s': %v", e.Kind, e.ID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InvalidIDError) Unwrap() error {
	return e.Err
}

// CoefficientError reports a stoichiometric coefficient too large to be
// drawn as parallel edges.
type CoefficientError struct {
	Reaction string
	Species  string
	Err      error
}

func (e *CoefficientError) Error() string {
	return fmt.Sprintf("reaction '%s': coefficient of species '%s': %v", e.Reaction, e.Species, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CoefficientError) Unwrap() error {
	return e.Err
}

// PathCollisionError reports two distinct entities resolving to one path.
type PathCollisionError struct {
	Path         nodeid.Path
	ExistingKind string
	ExistingID   string
	Kind         string
	ID           string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("path collision at '%s': %s '%s' clashes with %s '%s'",
		e.Path, e.Kind, e.ID, e.ExistingKind, e.ExistingID)
}

// DuplicateIDError reports two species sharing one id in different
// compartments, which would make reaction references ambiguous.
type DuplicateIDError struct {
	ID       string
	Existing nodeid.Path
	Path     nodeid.Path
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("species id '%s' declared twice: '%s' and '%s'", e.ID, e.Existing, e.Path)
}

// PhaseError reports an ingestion pass requested out of order.
type PhaseError struct {
	Current   Phase
	Requested Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("cannot move builder from %s to %s", e.Current, e.Requested)
}

package som

import "errors"

var (
	// ErrNotUniUni is returned when Merge gets a reaction which is not 1-1.
	ErrNotUniUni = errors.New("reaction must have category 1-1")
	// ErrUnknownMolecule is returned when a reaction references a molecule which is not part of the partition.
	ErrUnknownMolecule = errors.New("molecule is not part of any SOM")
)

package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const arrow = "->"

// ParseEquation parses the compact form "2 A + B -> C" into a reaction.
// A side may be empty or consist of EmptySet alone.
func ParseEquation(label, equation string) (*Reaction, error) {
	sides := strings.Split(equation, arrow)
	if len(sides) != 2 {
		return nil, fmt.Errorf("reaction %s: equation %q must contain exactly one %q", label, equation, arrow)
	}
	reactants, err := parseSide(sides[0])
	if err != nil {
		return nil, fmt.Errorf("reaction %s: %w", label, err)
	}
	products, err := parseSide(sides[1])
	if err != nil {
		return nil, fmt.Errorf("reaction %s: %w", label, err)
	}
	return NewReaction(label, reactants, products), nil
}

func parseSide(side string) ([]MoleculeStoichiometry, error) {
	side = strings.TrimSpace(side)
	if side == "" {
		return nil, nil
	}
	var terms []MoleculeStoichiometry
	for _, raw := range strings.Split(side, "+") {
		term, err := parseTerm(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		if term.Molecule.Name == EmptySet {
			continue
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func parseTerm(term string) (MoleculeStoichiometry, error) {
	fields := strings.Fields(term)
	switch len(fields) {
	case 1:
		return MoleculeStoichiometry{Molecule: Molecule{Name: fields[0]}, Stoichiometry: 1}, nil
	case 2:
		stoichiometry, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return MoleculeStoichiometry{}, fmt.Errorf("invalid stoichiometry %q in term %q", fields[0], term)
		}
		if err := ValidateStoichiometry(fields[1], stoichiometry); err != nil {
			return MoleculeStoichiometry{}, err
		}
		return MoleculeStoichiometry{Molecule: Molecule{Name: fields[1]}, Stoichiometry: stoichiometry}, nil
	default:
		return MoleculeStoichiometry{}, fmt.Errorf("invalid term %q", term)
	}
}

// ValidateStoichiometry rejects coefficients which are not finite positive
// numbers. NaN and infinities would silently cancel terms during reduction.
func ValidateStoichiometry(species string, stoichiometry float64) error {
	if math.IsNaN(stoichiometry) || math.IsInf(stoichiometry, 0) || stoichiometry <= 0 {
		return fmt.Errorf("stoichiometry of %s must be a finite positive number, got %v", species, stoichiometry)
	}
	return nil
}

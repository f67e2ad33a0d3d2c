package api

import (
	"fmt"
	"strings"
)

// EmptySet names the placeholder species some models use for a source or a
// sink. It never counts as a reactant or product.
const EmptySet = "EmptySet"

type ReactionCategory string

const (
	ReactionUniUni     ReactionCategory = "1-1"
	ReactionUniMulti   ReactionCategory = "1-n"
	ReactionMultiUni   ReactionCategory = "n-1"
	ReactionMultiMulti ReactionCategory = "n-n"
	ReactionBoundary   ReactionCategory = "Boundary"
)

type Molecule struct {
	Name string `json:"name"`
}

func (m Molecule) String() string {
	return m.Name
}

type MoleculeStoichiometry struct {
	Molecule      Molecule `json:"molecule"`
	Stoichiometry float64  `json:"stoichiometry"`
}

func (m MoleculeStoichiometry) String() string {
	if m.Stoichiometry == 1 {
		return m.Molecule.Name
	}
	return fmt.Sprintf("%.2f %s", m.Stoichiometry, m.Molecule.Name)
}

type Reaction struct {
	Label      string                  `json:"label"`
	Reactants  []MoleculeStoichiometry `json:"reactants"`
	Products   []MoleculeStoichiometry `json:"products"`
	Category   ReactionCategory        `json:"category"`
	Identifier string                  `json:"identifier"`
}

// NewReaction creates a reaction and derives its category and identifier
// from the given sides.
func NewReaction(label string, reactants, products []MoleculeStoichiometry) *Reaction {
	r := &Reaction{
		Label:     label,
		Reactants: reactants,
		Products:  products,
	}
	r.Rederive()
	return r
}

// Rederive recomputes category and identifier after the sides changed.
func (r *Reaction) Rederive() {
	r.Category = categorize(r.Reactants, r.Products)
	r.Identifier = r.makeIdentifier()
}

func (r *Reaction) makeIdentifier() string {
	return fmt.Sprintf("%s: %s -> %s", r.Label, joinTerms(r.Reactants), joinTerms(r.Products))
}

func joinTerms(terms []MoleculeStoichiometry) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " + ")
}

// Copy returns a reaction whose sides can be changed without affecting r.
func (r *Reaction) Copy() *Reaction {
	c := *r
	c.Reactants = append([]MoleculeStoichiometry(nil), r.Reactants...)
	c.Products = append([]MoleculeStoichiometry(nil), r.Products...)
	return &c
}

func (r *Reaction) String() string {
	return r.Identifier
}

// Molecules returns the molecules of both sides, reactants first, without
// EmptySet and without duplicates.
func (r *Reaction) Molecules() []Molecule {
	seen := map[string]struct{}{}
	var molecules []Molecule
	for _, side := range [][]MoleculeStoichiometry{r.Reactants, r.Products} {
		for _, ms := range side {
			if ms.Molecule.Name == EmptySet {
				continue
			}
			if _, exists := seen[ms.Molecule.Name]; exists {
				continue
			}
			seen[ms.Molecule.Name] = struct{}{}
			molecules = append(molecules, ms.Molecule)
		}
	}
	return molecules
}

type Model struct {
	Name      string      `json:"name"`
	Species   []Molecule  `json:"species"`
	Reactions []*Reaction `json:"reactions"`
}

// Molecules returns the declared species followed by species which only
// appear in reactions, in order of first appearance.
func (m *Model) Molecules() []Molecule {
	seen := map[string]struct{}{}
	var molecules []Molecule
	add := func(mol Molecule) {
		if mol.Name == EmptySet {
			return
		}
		if _, exists := seen[mol.Name]; exists {
			return
		}
		seen[mol.Name] = struct{}{}
		molecules = append(molecules, mol)
	}
	for _, mol := range m.Species {
		add(mol)
	}
	for _, r := range m.Reactions {
		for _, mol := range r.Molecules() {
			add(mol)
		}
	}
	return molecules
}

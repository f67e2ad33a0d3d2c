package somlint

// ModelFile is the on-disk form of a reaction network.
type ModelFile struct {
	Name      string          `json:"name"`
	Species   []string        `json:"species,omitempty"`
	Reactions []ModelReaction `json:"reactions"`
}

// ModelReaction either carries an equation like "2 A + B -> C" or explicit
// reactant and product lists, not both.
type ModelReaction struct {
	Label     string      `json:"label"`
	Equation  string      `json:"equation,omitempty"`
	Reactants []ModelTerm `json:"reactants,omitempty"`
	Products  []ModelTerm `json:"products,omitempty"`
}

type ModelTerm struct {
	Species string `json:"species"`
	// Stoichiometry defaults to 1 when omitted.
	Stoichiometry *float64 `json:"stoichiometry,omitempty"`
}

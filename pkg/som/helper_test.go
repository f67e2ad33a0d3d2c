package som

import (
	"github.com/somlint/somlint/pkg/api"
)

func newMolecules(names ...string) []api.Molecule {
	molecules := []api.Molecule{}
	for _, name := range names {
		molecules = append(molecules, api.Molecule{Name: name})
	}
	return molecules
}

func newReaction(label, equation string) *api.Reaction {
	r, err := api.ParseEquation(label, equation)
	if err != nil {
		panic(err)
	}
	return r
}

func term(name string, stoichiometry float64) api.MoleculeStoichiometry {
	return api.MoleculeStoichiometry{Molecule: api.Molecule{Name: name}, Stoichiometry: stoichiometry}
}

func identifiers(soms []*SOM) []string {
	ids := []string{}
	for _, s := range soms {
		ids = append(ids, s.Identifier())
	}
	return ids
}

// disjoint reports whether no molecule is shared by two SOMs.
func disjoint(soms []*SOM) bool {
	seen := map[string]struct{}{}
	for _, s := range soms {
		for _, m := range s.Molecules() {
			if _, exists := seen[m.Name]; exists {
				return false
			}
			seen[m.Name] = struct{}{}
		}
	}
	return true
}

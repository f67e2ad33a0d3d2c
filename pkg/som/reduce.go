package som

import (
	"github.com/sirupsen/logrus"
	"github.com/somlint/somlint/pkg/api"
)

// Reduce cancels weight-equivalent terms out of a n-n reaction.
//
// For every SOM in registration order, the reactant and product terms whose
// molecules belong to the SOM are paired first-in-first-out and the smaller
// stoichiometry is subtracted from both. A pair does not need to be the same
// molecule. Reductions accumulate over all SOMs. The result is a new reaction
// with its category and identifier derived again; r itself is not modified.
// Reactions which are not n-n, or where no side lost a term, are reported as
// not reduced.
func (p *Partition) Reduce(r *api.Reaction) (*api.Reaction, bool) {
	if r.Category != api.ReactionMultiMulti {
		return nil, false
	}

	reduced := false
	reactants, products := r.Reactants, r.Products
	for _, s := range p.soms {
		reactantsIn, reactantsOut := s.split(reactants)
		productsIn, productsOut := s.split(products)

		for len(reactantsIn) > 0 && len(productsIn) > 0 {
			reactant, product := reactantsIn[0], productsIn[0]
			switch {
			case reactant.Stoichiometry > product.Stoichiometry:
				reactantsIn[0] = api.MoleculeStoichiometry{
					Molecule:      reactant.Molecule,
					Stoichiometry: reactant.Stoichiometry - product.Stoichiometry,
				}
				productsIn = productsIn[1:]
			case reactant.Stoichiometry < product.Stoichiometry:
				productsIn[0] = api.MoleculeStoichiometry{
					Molecule:      product.Molecule,
					Stoichiometry: product.Stoichiometry - reactant.Stoichiometry,
				}
				reactantsIn = reactantsIn[1:]
			default:
				reactantsIn = reactantsIn[1:]
				productsIn = productsIn[1:]
			}
		}

		newReactants := append(reactantsIn, reactantsOut...)
		newProducts := append(productsIn, productsOut...)
		if len(newReactants) < len(reactants) || len(newProducts) < len(products) {
			logrus.Debugf("reduced %s with %s", r.Label, s)
			reduced = true
			reactants, products = newReactants, newProducts
		}
	}

	if !reduced {
		return nil, false
	}
	out := r.Copy()
	out.Reactants = append([]api.MoleculeStoichiometry(nil), reactants...)
	out.Products = append([]api.MoleculeStoichiometry(nil), products...)
	out.Rederive()
	return out, true
}

package api

type categoryRule struct {
	category  ReactionCategory
	predicate func(numReactants, numProducts int, stoichReactants, stoichProducts float64) bool
}

// Rules are evaluated in order, the first match wins.
var categoryRules = []categoryRule{
	{
		category: ReactionBoundary,
		predicate: func(nr, np int, _, _ float64) bool {
			return nr == 0 || np == 0
		},
	},
	{
		category: ReactionUniUni,
		predicate: func(nr, np int, sr, sp float64) bool {
			return nr == 1 && np == 1 && sr == sp
		},
	},
	{
		category: ReactionUniMulti,
		predicate: func(nr, _ int, sr, sp float64) bool {
			return nr == 1 && sr < sp
		},
	},
	{
		category: ReactionMultiUni,
		predicate: func(_, np int, sr, sp float64) bool {
			return np == 1 && sr > sp
		},
	},
	{
		category: ReactionMultiMulti,
		predicate: func(_, _ int, _, _ float64) bool {
			return true
		},
	},
}

func categorize(reactants, products []MoleculeStoichiometry) ReactionCategory {
	nr, sr := countSide(reactants)
	np, sp := countSide(products)
	for _, rule := range categoryRules {
		if rule.predicate(nr, np, sr, sp) {
			return rule.category
		}
	}
	return ReactionMultiMulti
}

func countSide(side []MoleculeStoichiometry) (count int, stoichiometry float64) {
	for _, ms := range side {
		if ms.Molecule.Name == EmptySet {
			continue
		}
		count++
		stoichiometry += ms.Stoichiometry
	}
	return count, stoichiometry
}

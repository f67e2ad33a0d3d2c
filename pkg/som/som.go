package som

import (
	"strings"

	"github.com/somlint/somlint/pkg/api"
	"golang.org/x/exp/slices"
)

const (
	bracketOpen  = "{"
	bracketClose = "}"
)

// SOM is a set of molecules of equal weight together with the uni-uni
// reactions which caused them to be merged.
type SOM struct {
	molecules  map[string]api.Molecule
	reactions  map[*api.Reaction]struct{}
	identifier string
}

// NewSOM creates a SOM. It is not part of any partition until it was passed
// to Partition.AddSOM.
func NewSOM(molecules []api.Molecule, reactions []*api.Reaction) *SOM {
	s := &SOM{
		molecules: make(map[string]api.Molecule, len(molecules)),
		reactions: make(map[*api.Reaction]struct{}, len(reactions)),
	}
	for _, m := range molecules {
		s.molecules[m.Name] = m
	}
	for _, r := range reactions {
		s.reactions[r] = struct{}{}
	}
	s.identifier = s.makeIdentifier()
	return s
}

func (s *SOM) makeIdentifier() string {
	return bracketOpen + strings.Join(s.names(), ", ") + bracketClose
}

func (s *SOM) names() []string {
	names := make([]string, 0, len(s.molecules))
	for name := range s.molecules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Identifier is the sorted list of member names, e.g. "{A, B}".
func (s *SOM) Identifier() string {
	return s.identifier
}

func (s *SOM) String() string {
	return s.identifier
}

// Contains reports whether a molecule with the given name is a member.
func (s *SOM) Contains(name string) bool {
	_, exists := s.molecules[name]
	return exists
}

func (s *SOM) Len() int {
	return len(s.molecules)
}

// Molecules returns the members sorted by name.
func (s *SOM) Molecules() []api.Molecule {
	molecules := make([]api.Molecule, 0, len(s.molecules))
	for _, name := range s.names() {
		molecules = append(molecules, s.molecules[name])
	}
	return molecules
}

// Reactions returns the uni-uni reactions which built this SOM, sorted by label.
func (s *SOM) Reactions() []*api.Reaction {
	reactions := make([]*api.Reaction, 0, len(s.reactions))
	for r := range s.reactions {
		reactions = append(reactions, r)
	}
	slices.SortFunc(reactions, func(a, b *api.Reaction) int {
		if c := strings.Compare(a.Label, b.Label); c != 0 {
			return c
		}
		return strings.Compare(a.Identifier, b.Identifier)
	})
	return reactions
}

// union returns a SOM holding the members and reactions of both.
func (s *SOM) union(other *SOM, trigger *api.Reaction) *SOM {
	molecules := append(s.Molecules(), other.Molecules()...)
	reactions := append(s.Reactions(), other.Reactions()...)
	reactions = append(reactions, trigger)
	return NewSOM(molecules, reactions)
}

// split separates a reaction side into the terms whose molecule is a member
// and the remaining terms. Both results are fresh slices in original order.
func (s *SOM) split(side []api.MoleculeStoichiometry) (in, out []api.MoleculeStoichiometry) {
	for _, ms := range side {
		if s.Contains(ms.Molecule.Name) {
			in = append(in, ms)
		} else {
			out = append(out, ms)
		}
	}
	return in, out
}

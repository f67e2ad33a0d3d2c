package som

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/somlint/somlint/pkg/api"
)

// AddResult tells whether AddSOM registered a SOM or rejected it.
type AddResult int

const (
	// Registered means the SOM is now part of the partition.
	Registered AddResult = iota
	// Overlapping means the SOM shares a molecule with a registered SOM and
	// was not added.
	Overlapping
)

func (a AddResult) String() string {
	switch a {
	case Registered:
		return "registered"
	case Overlapping:
		return "overlapping"
	default:
		return fmt.Sprintf("AddResult(%d)", int(a))
	}
}

// Partition is the registry of live SOMs. The molecule sets of its SOMs are
// pairwise disjoint.
type Partition struct {
	soms []*SOM
	// index maps every molecule name to the SOM owning it
	index map[string]*SOM
}

// NewPartition returns a partition with one singleton SOM per molecule.
func NewPartition(molecules []api.Molecule) *Partition {
	p := &Partition{}
	p.Initialize(molecules)
	return p
}

// Initialize drops all SOMs and creates one singleton SOM per molecule.
// SOMs obtained before must not be used with this partition anymore.
func (p *Partition) Initialize(molecules []api.Molecule) {
	p.soms = make([]*SOM, 0, len(molecules))
	p.index = make(map[string]*SOM, len(molecules))
	for _, m := range molecules {
		if p.AddSOM(NewSOM([]api.Molecule{m}, nil)) == Overlapping {
			logrus.Debugf("molecule %s is listed more than once, keeping the first occurrence", m.Name)
		}
	}
}

// AddSOM registers s unless one of its molecules already belongs to a
// registered SOM.
func (p *Partition) AddSOM(s *SOM) AddResult {
	if p.index == nil {
		p.index = map[string]*SOM{}
	}
	for name := range s.molecules {
		if _, exists := p.index[name]; exists {
			return Overlapping
		}
	}
	p.soms = append(p.soms, s)
	for name := range s.molecules {
		p.index[name] = s
	}
	return Registered
}

// FindSOM returns the SOM containing a molecule with the same name as m.
func (p *Partition) FindSOM(m api.Molecule) (*SOM, bool) {
	s, exists := p.index[m.Name]
	return s, exists
}

// SOMs returns the registered SOMs in registration order.
func (p *Partition) SOMs() []*SOM {
	return append([]*SOM(nil), p.soms...)
}

func (p *Partition) Len() int {
	return len(p.soms)
}

func (p *Partition) remove(s *SOM) {
	for i, candidate := range p.soms {
		if candidate == s {
			p.soms = append(p.soms[:i], p.soms[i+1:]...)
			break
		}
	}
	for name := range s.molecules {
		if p.index[name] == s {
			delete(p.index, name)
		}
	}
}

// Merge joins the SOMs of the sole reactant and the sole product of a 1-1
// reaction. If both are already in the same SOM, that SOM is returned and
// the partition is left untouched.
func (p *Partition) Merge(r *api.Reaction) (*SOM, error) {
	if r.Category != api.ReactionUniUni {
		return nil, fmt.Errorf("cannot merge %s with category %s: %w", r.Label, r.Category, ErrNotUniUni)
	}
	som1, err := p.findSole(r, r.Reactants)
	if err != nil {
		return nil, err
	}
	som2, err := p.findSole(r, r.Products)
	if err != nil {
		return nil, err
	}
	if som1 == som2 {
		return som1, nil
	}

	merged := som1.union(som2, r)
	p.remove(som1)
	p.remove(som2)
	if result := p.AddSOM(merged); result != Registered {
		// disjointness makes this unreachable
		return nil, fmt.Errorf("merged SOM %s for %s was %s", merged, r.Label, result)
	}
	logrus.Debugf("merged %s and %s into %s because of %s", som1, som2, merged, r.Label)
	return merged, nil
}

func (p *Partition) findSole(r *api.Reaction, side []api.MoleculeStoichiometry) (*SOM, error) {
	for _, ms := range side {
		if ms.Molecule.Name == api.EmptySet {
			continue
		}
		s, exists := p.FindSOM(ms.Molecule)
		if !exists {
			return nil, fmt.Errorf("reaction %s references %s: %w", r.Label, ms.Molecule.Name, ErrUnknownMolecule)
		}
		return s, nil
	}
	return nil, fmt.Errorf("reaction %s has an empty side: %w", r.Label, ErrNotUniUni)
}

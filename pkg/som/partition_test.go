package som

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/somlint/somlint/pkg/api"
)

func TestInitializeCreatesSingletons(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("B", "A", "C"))

	g.Expect(p.Len()).To(Equal(3))
	g.Expect(identifiers(p.SOMs())).To(Equal([]string{"{B}", "{A}", "{C}"}))
	for _, s := range p.SOMs() {
		g.Expect(s.Len()).To(Equal(1))
		g.Expect(s.Reactions()).To(BeEmpty())
	}
}

func TestInitializeSkipsDuplicateMolecules(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A", "B", "A"))

	g.Expect(identifiers(p.SOMs())).To(Equal([]string{"{A}", "{B}"}))
}

func TestInitializeResetsPartition(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A", "B"))
	_, err := p.Merge(newReaction("R1", "A -> B"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(p.Len()).To(Equal(1))

	p.Initialize(newMolecules("X", "Y", "Z"))
	g.Expect(identifiers(p.SOMs())).To(Equal([]string{"{X}", "{Y}", "{Z}"}))
	_, found := p.FindSOM(api.Molecule{Name: "A"})
	g.Expect(found).To(BeFalse())
}

func TestFindSOM(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A", "B"))

	s, found := p.FindSOM(api.Molecule{Name: "B"})
	g.Expect(found).To(BeTrue())
	g.Expect(s.Identifier()).To(Equal("{B}"))

	s, found = p.FindSOM(api.Molecule{Name: "C"})
	g.Expect(found).To(BeFalse())
	g.Expect(s).To(BeNil())
}

func TestAddSOM(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A", "B"))

	g.Expect(p.AddSOM(NewSOM(newMolecules("B", "C"), nil))).To(Equal(Overlapping))
	g.Expect(p.Len()).To(Equal(2))
	_, found := p.FindSOM(api.Molecule{Name: "C"})
	g.Expect(found).To(BeFalse())

	g.Expect(p.AddSOM(NewSOM(newMolecules("C", "D"), nil))).To(Equal(Registered))
	g.Expect(p.Len()).To(Equal(3))
	s, found := p.FindSOM(api.Molecule{Name: "D"})
	g.Expect(found).To(BeTrue())
	g.Expect(s.Identifier()).To(Equal("{C, D}"))
	g.Expect(disjoint(p.SOMs())).To(BeTrue())
}

func TestAddSOMOnZeroPartition(t *testing.T) {
	g := NewGomegaWithT(t)
	p := &Partition{}

	g.Expect(p.AddSOM(NewSOM(newMolecules("A"), nil))).To(Equal(Registered))
	g.Expect(p.Len()).To(Equal(1))
}

func TestMerge(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A", "B", "C"))
	r := newReaction("R1", "A -> B")
	somA, _ := p.FindSOM(api.Molecule{Name: "A"})
	somB, _ := p.FindSOM(api.Molecule{Name: "B"})

	merged, err := p.Merge(r)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(merged.Identifier()).To(Equal("{A, B}"))
	g.Expect(merged.Reactions()).To(ConsistOf(r))
	g.Expect(p.SOMs()).To(ConsistOf(merged, HaveField("Identifier()", "{C}")))
	g.Expect(p.SOMs()).ToNot(ContainElement(somA))
	g.Expect(p.SOMs()).ToNot(ContainElement(somB))

	for _, name := range []string{"A", "B"} {
		s, found := p.FindSOM(api.Molecule{Name: name})
		g.Expect(found).To(BeTrue())
		g.Expect(s).To(BeIdenticalTo(merged))
	}
}

func TestMergeConservation(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A", "B", "C", "D", "E"))
	r1 := newReaction("R1", "A -> B")
	r2 := newReaction("R2", "C -> D")
	r3 := newReaction("R3", "2 B -> 2 C")

	left, err := p.Merge(r1)
	g.Expect(err).ToNot(HaveOccurred())
	right, err := p.Merge(r2)
	g.Expect(err).ToNot(HaveOccurred())
	merged, err := p.Merge(r3)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(merged.Len()).To(Equal(left.Len() + right.Len()))
	g.Expect(merged.Identifier()).To(Equal("{A, B, C, D}"))
	g.Expect(merged.Reactions()).To(Equal([]*api.Reaction{r1, r2, r3}))
	g.Expect(identifiers(p.SOMs())).To(Equal([]string{"{E}", "{A, B, C, D}"}))
	g.Expect(disjoint(p.SOMs())).To(BeTrue())
}

func TestMergeIsIdempotent(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A", "B", "C"))

	first, err := p.Merge(newReaction("R1", "A -> B"))
	g.Expect(err).ToNot(HaveOccurred())
	second, err := p.Merge(newReaction("R2", "B -> A"))
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(second).To(BeIdenticalTo(first))
	g.Expect(p.Len()).To(Equal(2))
	g.Expect(second.Reactions()).To(HaveLen(1))
}

func TestMergeRejectsOtherCategories(t *testing.T) {
	tests := []struct {
		name     string
		equation string
	}{
		{name: "many to many", equation: "A + B -> C + D"},
		{name: "one to many", equation: "A -> B + C"},
		{name: "many to one", equation: "A + B -> C"},
		{name: "boundary", equation: "A -> EmptySet"},
		{name: "uneven stoichiometry", equation: "A -> 2 B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			p := NewPartition(newMolecules("A", "B", "C", "D"))

			s, err := p.Merge(newReaction("R1", tt.equation))
			g.Expect(err).To(MatchError(ErrNotUniUni))
			g.Expect(s).To(BeNil())
			g.Expect(p.Len()).To(Equal(4))
		})
	}
}

func TestMergeUnknownMolecule(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A"))

	_, err := p.Merge(newReaction("R1", "A -> Z"))
	g.Expect(err).To(MatchError(ErrUnknownMolecule))
	g.Expect(err.Error()).To(ContainSubstring("Z"))
	g.Expect(p.Len()).To(Equal(1))
}

func TestPartitionStaysDisjoint(t *testing.T) {
	g := NewGomegaWithT(t)
	p := NewPartition(newMolecules("A", "B", "C", "D", "E", "F"))

	for _, r := range []*api.Reaction{
		newReaction("R1", "A -> B"),
		newReaction("R2", "C -> D"),
		newReaction("R3", "E -> F"),
		newReaction("R4", "B -> C"),
		newReaction("R5", "D -> A"),
		newReaction("R6", "F -> A"),
	} {
		_, err := p.Merge(r)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(disjoint(p.SOMs())).To(BeTrue())
	}
	g.Expect(identifiers(p.SOMs())).To(Equal([]string{"{A, B, C, D, E, F}"}))
}

func TestAddResultString(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(Registered.String()).To(Equal("registered"))
	g.Expect(Overlapping.String()).To(Equal("overlapping"))
	g.Expect(AddResult(7).String()).To(Equal("AddResult(7)"))
}

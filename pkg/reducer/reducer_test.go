package reducer

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/somlint/somlint/pkg/api"
)

func TestReducerZeroReactions(t *testing.T) {
	g := NewGomegaWithT(t)
	result, err := run(newModel())

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(result.Partition.Len()).To(BeZero())
	g.Expect(result.Reactions).To(BeEmpty())
}

func TestReducerLoadError(t *testing.T) {
	g := NewGomegaWithT(t)
	modelReducer := NewModelReducer(&MockModelLoader{err: errors.New("boom")}, nil)

	g.Expect(modelReducer.Load()).To(MatchError("boom"))
}

func TestReducerOnlySingletons(t *testing.T) {
	g := NewGomegaWithT(t)
	result, err := run(newModel("A -> B + C"))

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(somIdentifiers(result)).To(Equal([]string{"{A}", "{B}", "{C}"}))
	g.Expect(result.Reactions).To(HaveLen(1))
	g.Expect(result.Reactions[0].Reduced()).To(BeFalse())
	g.Expect(result.Reactions[0].Merged).To(BeFalse())
}

func TestReducerLongChain(t *testing.T) {
	g := NewGomegaWithT(t)
	var equations []string
	for i := 0; i < 11; i++ {
		equations = append(equations, fmt.Sprintf("M%d -> M%d", i, i+1))
	}
	result, err := run(newModel(equations...))

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(result.Partition.Len()).To(Equal(1))
	g.Expect(result.Reactions).To(HaveLen(11))
	g.Expect(result.Reactions[9].Original.Label).To(Equal("R10"))
	g.Expect(result.Reactions[10].Original.Label).To(Equal("R11"))
	for _, state := range result.Reactions {
		g.Expect(state.Merged).To(BeTrue())
	}
}

func TestReducerMergesAndReduces(t *testing.T) {
	g := NewGomegaWithT(t)
	model := newModel("A -> B", "B -> C", "X + A -> Y + C")
	result, err := run(model)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(somIdentifiers(result)).To(Equal([]string{"{A, B, C}", "{X, Y}"}))

	g.Expect(result.Reactions[0].Merged).To(BeTrue())
	g.Expect(result.Reactions[1].Merged).To(BeTrue())
	reduced := result.Reactions[2]
	g.Expect(reduced.Reduced()).To(BeTrue())
	g.Expect(reduced.Merged).To(BeTrue())
	g.Expect(reduced.Current.Identifier).To(Equal("R3: X -> Y"))
	g.Expect(reduced.Original).To(BeIdenticalTo(model.Reactions[2]))
	g.Expect(reduced.Original.Identifier).To(Equal("R3: X + A -> Y + C"))
}

func TestReducerRepeatsUntilStable(t *testing.T) {
	g := NewGomegaWithT(t)
	result, err := run(newModel("A -> B", "X + P -> Y + Q", "A + X -> B + Y"))

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(somIdentifiers(result)).To(Equal([]string{"{A, B}", "{X, Y}", "{P, Q}"}))
	for _, state := range result.Reactions {
		g.Expect(state.Merged).To(BeTrue())
	}
	g.Expect(result.Reactions[1].Current.Identifier).To(Equal("R2: P -> Q"))
	g.Expect(result.Reactions[2].Current.Identifier).To(Equal("R3: X -> Y"))
}

func TestReducerKeepsPartialReductions(t *testing.T) {
	g := NewGomegaWithT(t)
	result, err := run(newModel("A -> B", "3 A + X -> 2 B + Y"))

	g.Expect(err).ToNot(HaveOccurred())
	state := result.Reactions[1]
	g.Expect(state.Reduced()).To(BeTrue())
	g.Expect(state.Merged).To(BeFalse())
	g.Expect(state.Current.Category).To(Equal(api.ReactionMultiUni))
	g.Expect(state.Current.Identifier).To(Equal("R2: A + X -> Y"))
}

func TestReducerIgnoresReactions(t *testing.T) {
	g := NewGomegaWithT(t)
	result, err := run(newModel("A -> B", "B -> C"), "R1")

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(somIdentifiers(result)).To(Equal([]string{"{A}", "{B, C}"}))
	g.Expect(result.Reactions).To(HaveLen(1))
	g.Expect(result.Reactions[0].Original.Label).To(Equal("R2"))
}

// Package games checks a partitioned and reduced reaction network for
// stoichiometric inconsistencies. Reactions with a single reactant or a
// single product order the SOMs by weight; a SOM outweighing itself, a
// cycle in that order, or a reaction reduced to a single empty side cannot
// be satisfied by positive weights.
package games

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/somlint/somlint/pkg/api"
	"github.com/somlint/somlint/pkg/order"
	"github.com/somlint/somlint/pkg/reducer"
	"github.com/somlint/somlint/pkg/som"
)

type FindingKind string

const (
	// EmptySide marks a reaction reduced to nothing on exactly one side.
	EmptySide FindingKind = "EmptySide"
	// SelfImbalance marks a SOM which would have to outweigh itself.
	SelfImbalance FindingKind = "SelfImbalance"
	// Cycle marks SOMs which outweigh each other in a circle.
	Cycle FindingKind = "Cycle"
)

type Finding struct {
	Kind      FindingKind `json:"kind"`
	SOMs      []string    `json:"soms"`
	Reactions []string    `json:"reactions"`
	Message   string      `json:"message"`
}

type SOMSummary struct {
	Identifier string   `json:"identifier"`
	Reactions  []string `json:"reactions,omitempty"`
}

type ReducedReaction struct {
	Label    string `json:"label"`
	Original string `json:"original"`
	Reduced  string `json:"reduced"`
	Merged   bool   `json:"merged,omitempty"`
}

type Report struct {
	Model      string            `json:"model"`
	Consistent bool              `json:"consistent"`
	SOMs       []SOMSummary      `json:"soms"`
	Reduced    []ReducedReaction `json:"reduced,omitempty"`
	Arcs       []order.Arc       `json:"arcs,omitempty"`
	Findings   []Finding         `json:"findings,omitempty"`
	// Levels lists the SOMs heaviest first, only set for consistent models.
	Levels [][]string `json:"levels,omitempty"`
	// Unordered lists SOMs which no reaction compares to another SOM.
	Unordered []string `json:"unordered,omitempty"`
}

func unordered(graph *order.Graph) (isolated []string) {
	compared := map[string]struct{}{}
	for _, arc := range append(graph.Arcs(), graph.SelfArcs()...) {
		compared[arc.Heavier] = struct{}{}
		compared[arc.Lighter] = struct{}{}
	}
	for _, node := range graph.Nodes() {
		if _, exists := compared[node]; !exists {
			isolated = append(isolated, node)
		}
	}
	return isolated
}

// Check builds the weight order of the partition and reports everything
// which contradicts positive weights.
func Check(result *reducer.Result) *Report {
	report := &Report{
		SOMs: summarize(result.Partition),
	}
	if result.Model != nil {
		report.Model = result.Model.Name
	}

	graph := order.NewGraph()
	for _, s := range result.Partition.SOMs() {
		graph.AddNode(s.Identifier())
	}

	for _, state := range result.Reactions {
		if state.Reduced() {
			report.Reduced = append(report.Reduced, ReducedReaction{
				Label:    state.Original.Label,
				Original: state.Original.Identifier,
				Reduced:  state.Current.Identifier,
				Merged:   state.Merged,
			})
		}
		if state.Merged {
			continue
		}
		switch state.Current.Category {
		case api.ReactionUniMulti:
			addArcs(graph, result.Partition, state.Current, state.Current.Reactants, state.Current.Products)
		case api.ReactionMultiUni:
			addArcs(graph, result.Partition, state.Current, state.Current.Products, state.Current.Reactants)
		case api.ReactionBoundary:
			reactants, products := withoutEmptySet(state.Current.Reactants), withoutEmptySet(state.Current.Products)
			if state.Reduced() && (len(reactants) > 0) != (len(products) > 0) {
				report.Findings = append(report.Findings, Finding{
					Kind:      EmptySide,
					SOMs:      somsOf(result.Partition, state.Current),
					Reactions: []string{state.Current.Label},
					Message:   fmt.Sprintf("%s reduces to %s", state.Original.Label, state.Current.Identifier),
				})
			}
		}
	}

	for _, arc := range graph.SelfArcs() {
		report.Findings = append(report.Findings, Finding{
			Kind:      SelfImbalance,
			SOMs:      []string{arc.Heavier},
			Reactions: arc.Reactions,
			Message:   fmt.Sprintf("%s must be heavier than itself because of %s", arc.Heavier, strings.Join(arc.Reactions, ", ")),
		})
	}

	if cycle := graph.Cycle(); cycle != nil {
		var reactions []string
		for i := 0; i+1 < len(cycle); i++ {
			for _, r := range graph.Reactions(cycle[i], cycle[i+1]) {
				reactions = appendUnique(reactions, r)
			}
		}
		report.Findings = append(report.Findings, Finding{
			Kind:      Cycle,
			SOMs:      cycle,
			Reactions: reactions,
			Message:   fmt.Sprintf("weight order is cyclic: %s", strings.Join(cycle, " > ")),
		})
	} else if levels, err := graph.Traverse(); err == nil {
		report.Levels = levels
	}

	report.Arcs = graph.Arcs()
	report.Unordered = unordered(graph)
	report.Consistent = len(report.Findings) == 0
	if report.Consistent {
		logrus.Infof("model %s is consistent, %d SOMs in %d weight levels", report.Model, len(report.SOMs), len(report.Levels))
	} else {
		logrus.Infof("model %s has %d findings", report.Model, len(report.Findings))
	}
	return report
}

// addArcs records that the single term on the heavy side outweighs every
// term on the other side whenever the stoichiometry allows that conclusion:
// with n*w(single) = sum(m_i*w(i)) and positive weights, w(single) > w(j)
// holds if n <= m_j and there is another term or n < m_j.
func addArcs(graph *order.Graph, p *som.Partition, r *api.Reaction, single, others []api.MoleculeStoichiometry) {
	single, others = withoutEmptySet(single), withoutEmptySet(others)
	if len(single) != 1 {
		return
	}
	heavy, ok := p.FindSOM(single[0].Molecule)
	if !ok {
		return
	}
	for _, other := range others {
		light, ok := p.FindSOM(other.Molecule)
		if !ok {
			continue
		}
		if single[0].Stoichiometry > other.Stoichiometry {
			logrus.Debugf("%s: no weight order between %s and %s", r.Label, heavy, light)
			continue
		}
		if len(others) == 1 && single[0].Stoichiometry == other.Stoichiometry {
			continue
		}
		graph.AddArc(heavy.Identifier(), light.Identifier(), r.Label)
	}
}

func withoutEmptySet(side []api.MoleculeStoichiometry) []api.MoleculeStoichiometry {
	var terms []api.MoleculeStoichiometry
	for _, ms := range side {
		if ms.Molecule.Name != api.EmptySet {
			terms = append(terms, ms)
		}
	}
	return terms
}

func summarize(p *som.Partition) []SOMSummary {
	var summaries []SOMSummary
	for _, s := range p.SOMs() {
		summary := SOMSummary{Identifier: s.Identifier()}
		for _, r := range s.Reactions() {
			summary.Reactions = append(summary.Reactions, r.Label)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func somsOf(p *som.Partition, r *api.Reaction) []string {
	var soms []string
	for _, m := range r.Molecules() {
		if s, ok := p.FindSOM(m); ok {
			soms = appendUnique(soms, s.Identifier())
		}
	}
	return soms
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

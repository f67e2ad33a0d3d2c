package order

import (
	"errors"
)

var ErrCycle = errors.New("weight order contains a cycle")

// Arc states that the SOM Heavier outweighs the SOM Lighter because of the
// listed reactions.
type Arc struct {
	Heavier   string   `json:"heavier"`
	Lighter   string   `json:"lighter"`
	Reactions []string `json:"reactions"`
}

type Node struct {
	name    string
	lighter map[string]*Node
	// keys keeps the insertion order of lighter
	keys      []string
	reactions map[string][]string
}

// Graph is the weight order between SOMs. Nodes are SOM identifiers.
type Graph struct {
	nodes    map[string]*Node
	keys     []string
	selfArcs []Arc
}

func NewGraph() *Graph {
	return &Graph{
		nodes: map[string]*Node{},
	}
}

func (g *Graph) AddNode(name string) *Node {
	if n, exists := g.nodes[name]; exists {
		return n
	}
	n := &Node{
		name:      name,
		lighter:   map[string]*Node{},
		reactions: map[string][]string{},
	}
	g.nodes[name] = n
	g.keys = append(g.keys, name)
	return n
}

// AddArc records that heavier outweighs lighter. An arc from a SOM to
// itself is a contradiction and is kept apart from the graph.
func (g *Graph) AddArc(heavier, lighter, reaction string) {
	if heavier == lighter {
		for i, arc := range g.selfArcs {
			if arc.Heavier == heavier {
				g.selfArcs[i].Reactions = appendUnique(arc.Reactions, reaction)
				return
			}
		}
		g.AddNode(heavier)
		g.selfArcs = append(g.selfArcs, Arc{Heavier: heavier, Lighter: lighter, Reactions: []string{reaction}})
		return
	}
	from := g.AddNode(heavier)
	to := g.AddNode(lighter)
	if _, exists := from.lighter[lighter]; !exists {
		from.lighter[lighter] = to
		from.keys = append(from.keys, lighter)
	}
	from.reactions[lighter] = appendUnique(from.reactions[lighter], reaction)
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

func (g *Graph) Nodes() []string {
	return append([]string(nil), g.keys...)
}

// Arcs returns all arcs between distinct SOMs in insertion order.
func (g *Graph) Arcs() (arcs []Arc) {
	for _, k := range g.keys {
		n := g.nodes[k]
		for _, l := range n.keys {
			arcs = append(arcs, Arc{Heavier: k, Lighter: l, Reactions: n.reactions[l]})
		}
	}
	return arcs
}

// SelfArcs returns the SOMs which were claimed to outweigh themselves.
func (g *Graph) SelfArcs() []Arc {
	return append([]Arc(nil), g.selfArcs...)
}

// Reactions returns the reactions behind the arc from heavier to lighter.
func (g *Graph) Reactions(heavier, lighter string) []string {
	if n, exists := g.nodes[heavier]; exists {
		return n.reactions[lighter]
	}
	return nil
}

// Cycle returns the first cycle found as a path which starts and ends with
// the same SOM, or nil if the order is acyclic. Self arcs are not considered.
func (g *Graph) Cycle() []string {
	visited := map[string]bool{}
	onStack := map[string]bool{}
	parent := map[string]string{}
	var cycle []string

	var visit func(n *Node) bool
	visit = func(n *Node) bool {
		visited[n.name] = true
		onStack[n.name] = true
		for _, k := range n.keys {
			if !visited[k] {
				parent[k] = n.name
				if visit(n.lighter[k]) {
					return true
				}
			} else if onStack[k] {
				cycle = []string{k}
				for curr := n.name; curr != k; curr = parent[curr] {
					cycle = append([]string{curr}, cycle...)
				}
				cycle = append([]string{k}, cycle...)
				return true
			}
		}
		onStack[n.name] = false
		return false
	}

	for _, k := range g.keys {
		if !visited[k] && visit(g.nodes[k]) {
			return cycle
		}
	}
	return nil
}

// Traverse returns the SOMs in layers, heaviest first. Every SOM appears in
// the first layer after all SOMs outweighing it.
func (g *Graph) Traverse() (layers [][]string, err error) {
	incoming := map[string]int{}
	for _, k := range g.keys {
		for _, l := range g.nodes[k].keys {
			incoming[l]++
		}
	}

	var queue []string
	for _, k := range g.keys {
		if incoming[k] == 0 {
			queue = append(queue, k)
		}
	}

	seen := 0
	for len(queue) > 0 {
		layer := queue
		queue = nil
		for _, k := range layer {
			seen++
			for _, l := range g.nodes[k].keys {
				incoming[l]--
				if incoming[l] == 0 {
					queue = append(queue, l)
				}
			}
		}
		layers = append(layers, layer)
	}

	if seen != len(g.keys) {
		return nil, ErrCycle
	}
	return layers, nil
}

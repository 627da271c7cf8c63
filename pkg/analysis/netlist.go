package analysis

import (
	"fmt"

	"github.com/edp1096/toy-circuit/pkg/circuit"
)

// Every component has two pins. A wire joins its start component's out pin
// to its end component's in pin.
func inPin(i int) int  { return 2 * i }
func outPin(i int) int { return 2*i + 1 }

type pinSet struct{ parent []int }

func newPinSet(n int) *pinSet {
	p := &pinSet{parent: make([]int, n)}
	for i := range p.parent {
		p.parent[i] = i
	}
	return p
}

func (p *pinSet) find(i int) int {
	for p.parent[i] != i {
		p.parent[i] = p.parent[p.parent[i]]
		i = p.parent[i]
	}
	return i
}

func (p *pinSet) union(a, b int) {
	ra, rb := p.find(a), p.find(b)
	if ra != rb {
		p.parent[rb] = ra
	}
}

// Netlist maps component pins onto MNA rows: nodes 1..NumNodes, then one
// branch row per voltage source. Node 0 is ground.
type Netlist struct {
	Components  []circuit.Component
	nodes       [][2]int // in, out node per component
	branches    []int    // branch row per component, 0 if none
	NumNodes    int
	NumBranches int
}

func BuildNetlist(components []circuit.Component, wires []circuit.Wire) (*Netlist, error) {
	index := make(map[string]int, len(components))
	ground := -1
	for i, c := range components {
		index[c.ID] = i
		if ground < 0 && c.Type.IsVoltageSource() {
			ground = i
		}
	}
	if ground < 0 {
		return nil, fmt.Errorf("no voltage source")
	}

	pins := newPinSet(2 * len(components))
	for _, w := range wires {
		start, ok := index[w.StartComponentID]
		if !ok {
			continue
		}
		end, ok := index[w.EndComponentID]
		if !ok {
			continue
		}
		pins.union(outPin(start), inPin(end))
	}

	nl := &Netlist{
		Components: components,
		nodes:      make([][2]int, len(components)),
		branches:   make([]int, len(components)),
	}

	groundRoot := pins.find(inPin(ground))
	nodeMap := map[int]int{groundRoot: 0}
	nodeOf := func(pin int) int {
		root := pins.find(pin)
		if idx, exists := nodeMap[root]; exists {
			return idx
		}
		nl.NumNodes++
		nodeMap[root] = nl.NumNodes
		return nl.NumNodes
	}
	for i := range components {
		nl.nodes[i] = [2]int{nodeOf(inPin(i)), nodeOf(outPin(i))}
	}

	branchStart := nl.NumNodes + 1
	for i, c := range components {
		if c.Type.IsVoltageSource() {
			nl.branches[i] = branchStart
			branchStart++
			nl.NumBranches++
		}
	}

	return nl, nil
}

func (nl *Netlist) Size() int { return nl.NumNodes + nl.NumBranches }

// Nodes returns the in and out node of component i.
func (nl *Netlist) Nodes(i int) (in, out int) {
	return nl.nodes[i][0], nl.nodes[i][1]
}

func (nl *Netlist) Branch(i int) int { return nl.branches[i] }

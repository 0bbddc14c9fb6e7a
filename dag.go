package main

import (
	"container/heap"

	"github.com/bits-and-blooms/bitset"
)

// DepGraph is the execution-order dependency graph of a circuit. Nodes are
// indices into the circuit's operation log; an edge u→v exists iff u comes
// before v in authoring order and the two operations share a qubit or a
// classical bit. Authoring order is a total order consistent with the graph,
// so the graph is acyclic by construction. The graph is a read-only index
// over the circuit: it never mutates the log.
type DepGraph struct {
	circuit *Circuit
	preds   [][]int
	succs   [][]int
}

// BuildDepGraph walks the operation log once, tracking the most recent
// operation on every resource (qubits first, classical bits offset past
// them), and draws an edge from each resource's last writer to the current
// operation. This is the same last-gate-per-wire sweep the circuit editor
// uses to stack gates, generalized to classical bits.
func BuildDepGraph(c *Circuit) (*DepGraph, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := len(c.Ops)
	g := &DepGraph{
		circuit: c,
		preds:   make([][]int, n),
		succs:   make([][]int, n),
	}

	last := make(map[int]int, c.NumQubits+c.NumClbits)
	for i, op := range c.Ops {
		seen := -1 // ops touch at most one shared predecessor per resource; dedupe pairs
		for _, r := range g.resources(op) {
			if j, ok := last[r]; ok && j != seen {
				g.preds[i] = append(g.preds[i], j)
				g.succs[j] = append(g.succs[j], i)
				seen = j
			}
			last[r] = i
		}
	}
	return g, nil
}

// resources returns the resource ids an operation touches: qubit q is id q,
// classical bit b is id NumQubits+b.
func (g *DepGraph) resources(op Operation) []int {
	rs := op.Qubits()
	if op.Clbit >= 0 {
		rs = append(rs, g.circuit.NumQubits+op.Clbit)
	}
	return rs
}

// Len returns the number of nodes.
func (g *DepGraph) Len() int { return len(g.preds) }

// Preds returns the direct predecessors of a node.
func (g *DepGraph) Preds(i int) []int { return g.preds[i] }

// Succs returns the direct successors of a node.
func (g *DepGraph) Succs(i int) []int { return g.succs[i] }

// Linearize returns a deterministic topological order of the graph: Kahn's
// algorithm, always releasing the lowest op index among the ready nodes.
// Restricted to any one qubit's line the result is exactly the
// authoring-order subsequence of operations on that qubit, which is what
// makes the optimizer reproducible.
func (g *DepGraph) Linearize() []int {
	n := g.Len()
	indeg := make([]int, n)
	for i := range g.preds {
		indeg[i] = len(g.preds[i])
	}

	ready := &intHeap{}
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			heap.Push(ready, i)
		}
	}

	scheduled := bitset.New(uint(n))
	order := make([]int, 0, n)
	for ready.Len() > 0 {
		i := heap.Pop(ready).(int)
		scheduled.Set(uint(i))
		order = append(order, i)
		for _, j := range g.succs[i] {
			indeg[j]--
			if indeg[j] == 0 {
				heap.Push(ready, j)
			}
		}
	}

	// Every node must have been released; anything else would mean a cycle,
	// which authoring order rules out.
	if scheduled.Count() != uint(n) {
		panic("dependency graph is cyclic")
	}
	return order
}

// Levels assigns each operation its earliest execution step: one past the
// latest level among its predecessors. Used by the renderer to lay gates out
// in columns, so that operations on disjoint wires share a step even though
// the log stores them sequentially.
func (g *DepGraph) Levels() []int {
	levels := make([]int, g.Len())
	for _, i := range g.Linearize() {
		level := 0
		for _, j := range g.preds[i] {
			if levels[j]+1 > level {
				level = levels[j] + 1
			}
		}
		levels[i] = level
	}
	return levels
}

// intHeap is a min-heap of op indices for deterministic node release.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

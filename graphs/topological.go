package graphs

import "fmt"

// TopologicalSort returns a vertex ordering of a DAG in which every
// edge v->w places v before w. Returns ErrNotDirected for undirected
// input and ErrCycle when no order exists. O(V+E) time.
func TopologicalSort(g *Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	const (
		unseen = iota
		active
		done
	)
	state := make([]int, g.V())
	order := make([]int, 0, g.V())

	var visit func(v int) error
	visit = func(v int) error {
		state[v] = active
		for _, w := range g.Adj(v) {
			switch state[w] {
			case active:
				return fmt.Errorf("%w: back edge %d->%d", ErrCycle, v, w)
			case unseen:
				if err := visit(w); err != nil {
					return err
				}
			}
		}
		state[v] = done
		order = append(order, v)
		return nil
	}

	for v := 0; v < g.V(); v++ {
		if state[v] == unseen {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse postorder is the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

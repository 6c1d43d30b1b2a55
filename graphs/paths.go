package graphs

import "fmt"

// Paths is the search tree rooted at one source vertex. For
// breadth-first trees dist holds the unweighted shortest distance; for
// depth-first trees it is the discovery depth.
type Paths struct {
	Source int
	parent []int
	dist   []int
}

// BreadthFirstPaths computes shortest unweighted paths from s to every
// reachable vertex. O(V+E) time, O(V) space.
func BreadthFirstPaths(g *Graph, s int) (*Paths, error) {
	p, err := newPaths(g, s)
	if err != nil {
		return nil, err
	}
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.Adj(v) {
			if p.dist[w] < 0 {
				p.parent[w] = v
				p.dist[w] = p.dist[v] + 1
				queue = append(queue, w)
			}
		}
	}
	return p, nil
}

// DepthFirstPaths computes some path, not necessarily the shortest,
// from s to every reachable vertex. O(V+E) time.
func DepthFirstPaths(g *Graph, s int) (*Paths, error) {
	p, err := newPaths(g, s)
	if err != nil {
		return nil, err
	}
	p.dfs(g, s)
	return p, nil
}

func (p *Paths) dfs(g *Graph, v int) {
	for _, w := range g.Adj(v) {
		if p.dist[w] < 0 {
			p.parent[w] = v
			p.dist[w] = p.dist[v] + 1
			p.dfs(g, w)
		}
	}
}

func newPaths(g *Graph, s int) (*Paths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.check(s); err != nil {
		return nil, err
	}
	p := &Paths{
		Source: s,
		parent: make([]int, g.V()),
		dist:   make([]int, g.V()),
	}
	for i := range p.dist {
		p.parent[i] = -1
		p.dist[i] = -1
	}
	p.dist[s] = 0
	return p, nil
}

// HasPathTo reports whether v was reached from the source.
func (p *Paths) HasPathTo(v int) bool {
	return v >= 0 && v < len(p.dist) && p.dist[v] >= 0
}

// DistTo returns the edge count from the source to v.
func (p *Paths) DistTo(v int) (int, error) {
	if v < 0 || v >= len(p.dist) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, len(p.dist))
	}
	if p.dist[v] < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNoPath, v)
	}
	return p.dist[v], nil
}

// PathTo returns the vertices from the source to v inclusive.
func (p *Paths) PathTo(v int) ([]int, error) {
	if _, err := p.DistTo(v); err != nil {
		return nil, err
	}
	var path []int
	for x := v; x != -1; x = p.parent[x] {
		path = append(path, x)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

package graph

// FindComponents partitions the vertices into connected components.
//
// Each vertex's Component field is set to the index of its component.
// Components are numbered 0..k-1 in the order their first vertex was added,
// so the numbering is stable for a given graph. The count k is stored on the
// graph (see [Graph.Components]) and returned.
//
// Time:   O(V + E).
// Memory: O(V) for the visited set and queue.
func (g *Graph) FindComponents() int {
	seen := make(map[string]bool, len(g.order))
	count := 0

	for _, start := range g.order {
		if seen[start.Label] {
			continue
		}
		queue := []*Vertex{start}
		seen[start.Label] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			u.Component = count
			for _, v := range g.adjacent[u.Label] {
				if !seen[v.Label] {
					seen[v.Label] = true
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	g.components = count
	return count
}

// Components returns the component count computed by the last call to
// FindComponents, or 0 if it has never run.
func (g *Graph) Components() int { return g.components }

// ComponentMembers groups vertex labels by component index. FindComponents
// must have run; vertices without a component are skipped.
func (g *Graph) ComponentMembers() [][]string {
	members := make([][]string, g.components)
	for _, v := range g.order {
		if v.Component < 0 || v.Component >= g.components {
			continue
		}
		members[v.Component] = append(members[v.Component], v.Label)
	}
	return members
}

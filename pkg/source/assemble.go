package source

// Roots returns deep copies of every top-level component: the nested root (if
// any) followed by the assembled flat components. Flat components whose parent
// chain loops are attached at top level where the loop is detected.
func (t Tree) Roots() []Component {
	var roots []Component
	if root := t.RootComponent(); root != nil {
		roots = append(roots, root.Clone())
	}
	return append(roots, Assemble(t.Components)...)
}

// Assemble nests a flat component list using parent_id references. Components
// without a parent, with an unknown parent, or closing a parent cycle become
// top-level entries. Source order is preserved among siblings.
func Assemble(flat []Component) []Component {
	if len(flat) == 0 {
		return nil
	}

	index := make(map[string]int, len(flat))
	for i, comp := range flat {
		if comp.ID == "" {
			continue
		}
		if _, exists := index[comp.ID]; !exists {
			index[comp.ID] = i
		}
	}

	parentOf := func(i int) (int, bool) {
		pid := flat[i].ParentID
		if pid == "" || pid == flat[i].ID {
			return 0, false
		}
		p, ok := index[pid]
		return p, ok
	}

	broken := make(map[int]bool)
	for i := range flat {
		if flat[i].ParentID == flat[i].ID && flat[i].ID != "" {
			broken[i] = true
			continue
		}
		visited := map[int]bool{i: true}
		cur, ok := parentOf(i)
		for ok && !broken[cur] {
			if visited[cur] {
				broken[cur] = true
				break
			}
			visited[cur] = true
			cur, ok = parentOf(cur)
		}
	}

	children := make(map[int][]int)
	var top []int
	for i := range flat {
		p, ok := parentOf(i)
		if !ok || broken[i] {
			top = append(top, i)
			continue
		}
		children[p] = append(children[p], i)
	}

	var build func(i int, path map[int]bool) Component
	build = func(i int, path map[int]bool) Component {
		comp := flat[i].Clone()
		path[i] = true
		for _, child := range children[i] {
			if path[child] {
				continue
			}
			comp.Children = append(comp.Children, build(child, path))
		}
		delete(path, i)
		return comp
	}

	out := make([]Component, 0, len(top))
	for _, i := range top {
		out = append(out, build(i, map[int]bool{}))
	}
	return out
}

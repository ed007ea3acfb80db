package syncmap

// Tree is an ordered multi-way tree of fragments. The root node of a
// sync map carries no payload; structural nodes with a nil fragment
// may appear at any level.
type Tree struct {
	value    *Fragment
	children []*Tree
}

func NewTree(value *Fragment) *Tree {
	return &Tree{value: value}
}

func (t *Tree) Value() *Fragment {
	return t.value
}

func (t *Tree) Children() []*Tree {
	return t.children
}

// AddChild attaches node as the last child, or as the first child
// when asLast is false.
func (t *Tree) AddChild(node *Tree, asLast bool) {
	if asLast {
		t.children = append(t.children, node)
		return
	}
	t.children = append([]*Tree{node}, t.children...)
}

// IsEmpty reports whether the subtree rooted at t contains no
// fragment at all.
func (t *Tree) IsEmpty() bool {
	if t.value != nil {
		return false
	}
	for _, child := range t.children {
		if !child.IsEmpty() {
			return false
		}
	}
	return true
}

// ChildrenNotEmpty returns the direct children whose subtree contains
// at least one fragment, preserving sibling order.
func (t *Tree) ChildrenNotEmpty() []*Tree {
	var out []*Tree
	for _, child := range t.children {
		if !child.IsEmpty() {
			out = append(out, child)
		}
	}
	return out
}

// Height returns the number of levels in the tree. A lone node has
// height 1.
func (t *Tree) Height() int {
	max := 0
	for _, child := range t.children {
		if h := child.Height(); h > max {
			max = h
		}
	}
	return max + 1
}

// EachFragment visits every fragment in the subtree depth-first,
// preserving sibling order.
func (t *Tree) EachFragment(fn func(*Fragment)) {
	if t.value != nil {
		fn(t.value)
	}
	for _, child := range t.children {
		child.EachFragment(fn)
	}
}

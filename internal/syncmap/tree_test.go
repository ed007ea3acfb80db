package syncmap

import (
	"testing"
	"time"
)

func newTestFragment(id string, begin, end time.Duration) *Fragment {
	return NewFragment(
		&TextFragment{Identifier: id, Lines: []string{"text " + id}},
		begin, end,
	)
}

func TestTreeAddChildOrder(t *testing.T) {
	root := NewTree(nil)
	root.AddChild(NewTree(newTestFragment("f1", 0, time.Second)), true)
	root.AddChild(NewTree(newTestFragment("f2", time.Second, 2*time.Second)), true)
	root.AddChild(NewTree(newTestFragment("f0", 0, 0)), false)

	children := root.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	for i, want := range []string{"f0", "f1", "f2"} {
		if got := children[i].Value().Text.Identifier; got != want {
			t.Errorf("child %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestTreeIsEmpty(t *testing.T) {
	root := NewTree(nil)
	if !root.IsEmpty() {
		t.Error("lone root should be empty")
	}

	structural := NewTree(nil)
	root.AddChild(structural, true)
	if !root.IsEmpty() {
		t.Error("tree of structural nodes should be empty")
	}

	structural.AddChild(NewTree(newTestFragment("f1", 0, time.Second)), true)
	if root.IsEmpty() {
		t.Error("tree with a nested fragment should not be empty")
	}
}

func TestTreeChildrenNotEmpty(t *testing.T) {
	root := NewTree(nil)
	root.AddChild(NewTree(newTestFragment("f1", 0, time.Second)), true)
	root.AddChild(NewTree(nil), true)

	structural := NewTree(nil)
	structural.AddChild(NewTree(newTestFragment("f2", time.Second, 2*time.Second)), true)
	root.AddChild(structural, true)

	got := root.ChildrenNotEmpty()
	if len(got) != 2 {
		t.Fatalf("expected 2 non-empty children, got %d", len(got))
	}
	if got[0].Value().Text.Identifier != "f1" {
		t.Errorf("expected f1 first, got %s", got[0].Value().Text.Identifier)
	}
	if got[1].Value() != nil {
		t.Error("second non-empty child should be the structural node")
	}
}

func TestTreeHeight(t *testing.T) {
	root := NewTree(nil)
	if root.Height() != 1 {
		t.Errorf("expected height 1, got %d", root.Height())
	}

	child := NewTree(newTestFragment("f1", 0, time.Second))
	root.AddChild(child, true)
	if root.Height() != 2 {
		t.Errorf("expected height 2, got %d", root.Height())
	}

	child.AddChild(NewTree(newTestFragment("f1.1", 0, time.Second)), true)
	if root.Height() != 3 {
		t.Errorf("expected height 3, got %d", root.Height())
	}
}

func TestTreeEachFragment(t *testing.T) {
	root := NewTree(nil)
	parent := NewTree(newTestFragment("p1", 0, 2*time.Second))
	parent.AddChild(NewTree(newTestFragment("s1", 0, time.Second)), true)
	parent.AddChild(NewTree(newTestFragment("s2", time.Second, 2*time.Second)), true)
	root.AddChild(parent, true)

	var visited []string
	root.EachFragment(func(f *Fragment) {
		visited = append(visited, f.Text.Identifier)
	})

	want := []string{"p1", "s1", "s2"}
	if len(visited) != len(want) {
		t.Fatalf("expected %d fragments, got %d", len(want), len(visited))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], visited[i])
		}
	}
}

package fuzzytrie

import "testing"

func ptrTo[V any](v V) *V { return &v }

func TestNodeInsertSplitsOnMismatch(t *testing.T) {
	root := newLeaf[int]("romanus", nil)
	added, chars := root.insert("romulus", nil)
	if added != 2 {
		t.Fatalf("nodesAdded = %d, want 2", added)
	}
	if chars != 4 { // "ulus"
		t.Fatalf("charsAdded = %d, want 4", chars)
	}
	if root.text != "rom" {
		t.Fatalf("root.text = %q, want %q", root.text, "rom")
	}
	if root.terminal {
		t.Fatal("root should no longer be terminal after the split")
	}
	if len(root.children) != 2 {
		t.Fatalf("root should have exactly 2 children after the split, got %d", len(root.children))
	}
	a, ok := root.children['a']
	if !ok || a.text != "anus" || !a.terminal {
		t.Fatalf("unexpected 'a' child: %+v, ok=%v", a, ok)
	}
	u, ok := root.children['u']
	if !ok || u.text != "ulus" || !u.terminal {
		t.Fatalf("unexpected 'u' child: %+v, ok=%v", u, ok)
	}
}

func TestNodeInsertDescendsIntoExistingChild(t *testing.T) {
	root := newLeaf[int]("ro", nil)
	root.terminal = false
	root.children['m'] = newLeaf[int]("m", nil)

	added, chars := root.insert("roman", nil)
	if added != 1 {
		t.Fatalf("nodesAdded = %d, want 1", added)
	}
	if chars != 2 { // "an"
		t.Fatalf("charsAdded = %d, want 2", chars)
	}
	m := root.children['m']
	if m == nil || !m.terminal {
		t.Fatalf("'m' child should remain terminal (it is still a stored key): %+v", m)
	}
	a, ok := m.children['a']
	if !ok || a.text != "an" || !a.terminal {
		t.Fatalf("unexpected 'a' grandchild: %+v, ok=%v", a, ok)
	}
}

func TestNodeInsertSplitsTerminalPrefix(t *testing.T) {
	root := newLeaf[int]("rom", nil)
	added, chars := root.insert("ro", nil)
	if added != 1 {
		t.Fatalf("nodesAdded = %d, want 1", added)
	}
	if chars != 0 {
		t.Fatalf("charsAdded = %d, want 0", chars)
	}
	if root.text != "ro" || !root.terminal {
		t.Fatalf("root = %+v, want text=\"ro\" terminal=true", root)
	}
	m, ok := root.children['m']
	if !ok || m.text != "m" || !m.terminal {
		t.Fatalf("unexpected 'm' child: %+v, ok=%v", m, ok)
	}
}

func TestNodeInsertSamePayloadDoesNotOverwrite(t *testing.T) {
	root := newLeaf[int]("key", ptrTo(1))
	root.insert("key", ptrTo(2))
	if root.value == nil || *root.value != 1 {
		t.Fatalf("value = %v, want 1 (no overwrite)", root.value)
	}
}

func TestNodeRemoveCollapsesToMergedSibling(t *testing.T) {
	root := newLeaf[int]("rom", nil)
	root.terminal = false
	root.children['a'] = newLeaf[int]("anus", nil)
	root.children['u'] = newLeaf[int]("ulus", nil)
	root.recomputeWeight()

	var nodeCount, charCount int
	root.remove("romanus", &nodeCount, &charCount)

	if len(root.children) != 0 {
		t.Fatalf("after removing romanus, root should have adopted the leaf's (empty) children, got %d", len(root.children))
	}
	if root.text != "romulus" {
		t.Fatalf("root.text = %q, want %q (merged with sole remaining child)", root.text, "romulus")
	}
	if !root.terminal {
		t.Fatal("root should be terminal after merging with the terminal 'ulus' leaf")
	}
}

func TestNodeRemoveDescendantDoesNotMergeTerminalAncestor(t *testing.T) {
	root := newLeaf[int]("ab", ptrTo(1))
	root.children['c'] = newLeaf[int]("c", ptrTo(2))
	root.children['d'] = newLeaf[int]("d", ptrTo(3))
	root.recomputeWeight()

	var nodeCount, charCount int
	root.remove("abd", &nodeCount, &charCount)

	if root.text != "ab" {
		t.Fatalf("root.text = %q, want %q (must not merge into remaining child 'c')", root.text, "ab")
	}
	if !root.terminal || root.value == nil || *root.value != 1 {
		t.Fatalf("root should remain terminal with its own value 1, got terminal=%v value=%v", root.terminal, root.value)
	}
	if len(root.children) != 1 {
		t.Fatalf("root should have exactly 1 remaining child ('c'), got %d", len(root.children))
	}
	c, ok := root.children['c']
	if !ok || c.text != "c" || !c.terminal || c.value == nil || *c.value != 2 {
		t.Fatalf("unexpected 'c' child: %+v, ok=%v", c, ok)
	}
}

func TestNodeRemoveOfNonExistentKeyDoesNotPanic(t *testing.T) {
	root := newLeaf[int]("rom", nil)
	var nodeCount, charCount int
	root.remove("zzz", &nodeCount, &charCount)
	if nodeCount != 0 || charCount != 0 {
		t.Fatalf("remove of a non-existent key mutated counters: node=%d char=%d", nodeCount, charCount)
	}
}

func TestNodeChildrenIteratorStopsEarly(t *testing.T) {
	root := newLeaf[int]("rom", nil)
	root.terminal = false
	root.children['a'] = newLeaf[int]("nus", nil)
	root.children['u'] = newLeaf[int]("ulus", nil)

	seen := 0
	for range root.Children() {
		seen++
		break
	}
	if seen != 1 {
		t.Fatalf("iterator did not stop after the consumer returned false: saw %d", seen)
	}
}

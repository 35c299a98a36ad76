package avl

import "math/rand"
import "sort"
import "testing"

type testitem struct {
	value int64
	node  Node
}

func insertvalue(root *Node, value int64) *Node {
	item := &testitem{value: value}
	item.node.Init(item)

	var parent *Node
	from := &root
	for *from != nil {
		parent = *from
		if value < parent.Item().(*testitem).value {
			from = &parent.Left
		} else {
			from = &parent.Right
		}
	}
	*from = &item.node
	item.node.Parent = parent
	return Fix(&item.node)
}

func lookupvalue(root *Node, value int64) *Node {
	for nd := root; nd != nil; {
		v := nd.Item().(*testitem).value
		if value < v {
			nd = nd.Left
		} else if value > v {
			nd = nd.Right
		} else {
			return nd
		}
	}
	return nil
}

func inorder(nd *Node, fn func(*testitem)) {
	if nd == nil {
		return
	}
	inorder(nd.Left, fn)
	fn(nd.Item().(*testitem))
	inorder(nd.Right, fn)
}

func treevalues(root *Node) []int64 {
	values := make([]int64, 0, root.Count())
	inorder(root, func(item *testitem) {
		values = append(values, item.value)
	})
	return values
}

func TestSequentialInserts(t *testing.T) {
	var root *Node
	for i := int64(0); i < 1000; i++ {
		root = insertvalue(root, i)
		Validate(root)
	}
	if x := root.Count(); x != 1000 {
		t.Fatalf("expected %v nodes, got %v", 1000, x)
	}
	// a fully skewed insert order is the worst case for balancing
	if h := root.Height(); h > 14 {
		t.Errorf("tree of 1000 nodes grew to height %v", h)
	}
	values := treevalues(root)
	for i, value := range values {
		if value != int64(i) {
			t.Fatalf("expected %v at position %v, got %v", i, i, value)
		}
	}
}

func TestDeleteCases(t *testing.T) {
	var root *Node
	for _, v := range []int64{50, 30, 70, 20, 40, 60, 80, 10} {
		root = insertvalue(root, v)
	}

	// leaf
	root = Delete(lookupvalue(root, 10))
	Validate(root)
	// one child
	root = insertvalue(root, 25)
	root = Delete(lookupvalue(root, 20))
	Validate(root)
	// two children
	root = Delete(lookupvalue(root, 30))
	Validate(root)
	// root node
	root = Delete(root)
	Validate(root)

	remaining := treevalues(root)
	expected := []int64{25, 40, 60, 70, 80}
	if len(remaining) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, remaining)
	}
	for i, value := range expected {
		if remaining[i] != value {
			t.Fatalf("expected %v, got %v", expected, remaining)
		}
	}
}

func TestDeleteToEmpty(t *testing.T) {
	var root *Node
	for i := int64(0); i < 100; i++ {
		root = insertvalue(root, i)
	}
	for i := int64(0); i < 100; i++ {
		nd := lookupvalue(root, i)
		if nd == nil {
			t.Fatalf("missing value %v", i)
		}
		root = Delete(nd)
		Validate(root)
	}
	if root != nil {
		t.Errorf("expected an empty tree, got %v nodes", root.Count())
	}
}

func TestRandomChurn(t *testing.T) {
	var root *Node

	rnd := rand.New(rand.NewSource(42))
	reference := make([]int64, 0, 1024)
	for i := 0; i < 10000; i++ {
		value := int64(rnd.Intn(500))
		if rnd.Intn(3) > 0 { // two inserts for every delete
			root = insertvalue(root, value)
			reference = append(reference, value)
		} else if nd := lookupvalue(root, value); nd != nil {
			root = Delete(nd)
			for j, v := range reference {
				if v == value {
					reference = append(reference[:j], reference[j+1:]...)
					break
				}
			}
		}
		if i%512 == 0 {
			Validate(root)
		}
	}
	Validate(root)

	sort.Slice(reference, func(i, j int) bool {
		return reference[i] < reference[j]
	})
	values := treevalues(root)
	if len(values) != len(reference) {
		t.Fatalf("expected %v values, got %v", len(reference), len(values))
	}
	for i, value := range reference {
		if values[i] != value {
			t.Fatalf("at %v expected %v, got %v", i, value, values[i])
		}
	}
}

func TestOffset(t *testing.T) {
	var root *Node
	for i := int64(0); i < 128; i++ {
		root = insertvalue(root, i)
	}

	min := root
	for min.Left != nil {
		min = min.Left
	}
	for k := int64(0); k < 128; k++ {
		nd := Offset(min, k)
		if nd == nil {
			t.Fatalf("offset %v walked off the tree", k)
		}
		if v := nd.Item().(*testitem).value; v != k {
			t.Fatalf("offset %v: expected %v, got %v", k, k, v)
		}
		// walking back lands on the start node
		if back := Offset(nd, -k); back != min {
			t.Fatalf("offset %v did not round-trip", k)
		}
		if r := Rank(nd); r != k {
			t.Fatalf("expected rank %v, got %v", k, r)
		}
	}
	if nd := Offset(min, 128); nd != nil {
		t.Errorf("expected nil beyond the last node")
	}
	if nd := Offset(min, -1); nd != nil {
		t.Errorf("expected nil before the first node")
	}
}

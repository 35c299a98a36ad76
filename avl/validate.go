package avl

import "fmt"

// Validate walk the whole tree and panic on the first broken
// invariant: parent back-links, height arithmetic, subtree counts
// and the AVL skew limit. Sort order is the caller's invariant and
// is validated by the owning structure.
func Validate(root *Node) {
	if root != nil && root.Parent != nil {
		panic(fmt.Errorf("validate(): root %v has a parent link", root.item))
	}
	validatenode(root)
}

func validatenode(nd *Node) (height, count int32) {
	if nd == nil {
		return 0, 0
	}
	if nd.Left != nil && nd.Left.Parent != nd {
		panic(fmt.Errorf("validate(): broken parent link on left of %v", nd.item))
	}
	if nd.Right != nil && nd.Right.Parent != nd {
		panic(fmt.Errorf("validate(): broken parent link on right of %v", nd.item))
	}

	lh, lc := validatenode(nd.Left)
	rh, rc := validatenode(nd.Right)

	if skew := lh - rh; skew < -1 || skew > 1 {
		panic(fmt.Errorf("validate(): skew %v at %v", skew, nd.item))
	}
	height = 1 + lh
	if rh > lh {
		height = 1 + rh
	}
	if nd.height != height {
		panic(fmt.Errorf("validate(): height %v, expected %v", nd.height, height))
	}
	count = 1 + lc + rc
	if nd.count != count {
		panic(fmt.Errorf("validate(): count %v, expected %v", nd.count, count))
	}
	return height, count
}

package avl

// rotateleft around nd, whose right child becomes the subtree root.
// Does not touch the parent's child slot, callers patch that.
func rotateleft(nd *Node) *Node {
	parent := nd.Parent
	pivot := nd.Right
	inner := pivot.Left

	nd.Right = inner
	if inner != nil {
		inner.Parent = nd
	}
	pivot.Parent = parent
	pivot.Left = nd
	nd.Parent = pivot

	nd.update()
	pivot.update()
	return pivot
}

// rotateright around nd, whose left child becomes the subtree root.
func rotateright(nd *Node) *Node {
	parent := nd.Parent
	pivot := nd.Left
	inner := pivot.Right

	nd.Left = inner
	if inner != nil {
		inner.Parent = nd
	}
	pivot.Parent = parent
	pivot.Right = nd
	nd.Parent = pivot

	nd.update()
	pivot.update()
	return pivot
}

// fixleft restore balance when the left subtree is exactly 2 taller,
// rotating the left child first when it leans right.
func fixleft(nd *Node) *Node {
	if nd.Left.Left.Height() < nd.Left.Right.Height() {
		nd.Left = rotateleft(nd.Left)
	}
	return rotateright(nd)
}

// fixright restore balance when the right subtree is exactly 2
// taller, rotating the right child first when it leans left.
func fixright(nd *Node) *Node {
	if nd.Right.Right.Height() < nd.Right.Left.Height() {
		nd.Right = rotateright(nd.Right)
	}
	return rotateleft(nd)
}

// Fix restore height and count bookkeeping from nd up to the root,
// rebalancing on the way, and return the root, possibly new. A skew
// of exactly 2 is the only case to handle since Fix is called right
// after a single-node depth change.
func Fix(nd *Node) *Node {
	for {
		parent := nd.Parent
		var from **Node
		if parent != nil {
			if parent.Left == nd {
				from = &parent.Left
			} else {
				from = &parent.Right
			}
		}

		nd.update()

		fixed := nd
		l, r := nd.Left.Height(), nd.Right.Height()
		if l == r+2 {
			fixed = fixleft(nd)
		} else if l+2 == r {
			fixed = fixright(nd)
		}
		if parent == nil {
			return fixed
		}
		*from = fixed
		nd = parent
	}
}

// deleteeasy detach a node with at most one child, splicing the
// child into the parent's slot, and return the new root.
func deleteeasy(nd *Node) *Node {
	child := nd.Left
	if child == nil {
		child = nd.Right
	}
	parent := nd.Parent
	if child != nil {
		child.Parent = parent
	}
	if parent == nil {
		return child
	}
	if parent.Left == nd {
		parent.Left = child
	} else {
		parent.Right = child
	}
	return Fix(parent)
}

// Delete detach nd from its tree and return the new root. When nd
// has two children its in-order successor is structurally removed
// first and then takes over nd's position, so the successor's owner
// record keeps living at the right place while nd's owner goes away.
func Delete(nd *Node) *Node {
	if nd.Left == nil || nd.Right == nil {
		return deleteeasy(nd)
	}

	// in-order successor, leftmost under the right subtree.
	victim := nd.Right
	for victim.Left != nil {
		victim = victim.Left
	}
	root := deleteeasy(victim)

	// successor header takes over nd's structural position. Copy
	// links and bookkeeping, never the owner reference.
	victim.Parent, victim.Left, victim.Right = nd.Parent, nd.Left, nd.Right
	victim.height, victim.count = nd.height, nd.count
	if victim.Left != nil {
		victim.Left.Parent = victim
	}
	if victim.Right != nil {
		victim.Right.Parent = victim
	}

	parent := nd.Parent
	if parent == nil {
		return victim
	}
	if parent.Left == nd {
		parent.Left = victim
	} else {
		parent.Right = victim
	}
	return root
}

// Offset return the node `offset` positions away from nd in in-order
// traversal order, negative for predecessors, nil when the walk runs
// off either end of the tree. O(log n) amortized, each direction
// change is bounded by tree height.
func Offset(nd *Node, offset int64) *Node {
	pos := int64(0) // in-order position relative to the start node
	for offset != pos {
		if pos < offset && pos+int64(nd.Right.Count()) >= offset {
			// target is inside the right subtree
			nd = nd.Right
			pos += int64(nd.Left.Count()) + 1
		} else if pos > offset && pos-int64(nd.Left.Count()) <= offset {
			// target is inside the left subtree
			nd = nd.Left
			pos -= int64(nd.Right.Count()) + 1
		} else {
			parent := nd.Parent
			if parent == nil {
				return nil
			}
			if parent.Right == nd {
				pos -= int64(nd.Left.Count()) + 1
			} else {
				pos += int64(nd.Right.Count()) + 1
			}
			nd = parent
		}
	}
	return nd
}

// Rank return the number of nodes ordered before nd in its tree,
// that is, nd's 0-based in-order position.
func Rank(nd *Node) int64 {
	rank := int64(nd.Left.Count())
	for nd.Parent != nil {
		if nd.Parent.Right == nd {
			rank += int64(nd.Parent.Left.Count()) + 1
		}
		nd = nd.Parent
	}
	return rank
}

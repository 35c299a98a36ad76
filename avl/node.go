package avl

// Node is the intrusive tree header, embedded inside the owner
// record it indexes. Parent is a non-owning back-link, used only
// for traversal and rebalancing.
type Node struct {
	Parent *Node
	Left   *Node
	Right  *Node
	height int32
	count  int32
	item   interface{}
}

// Init reset the header to a single-node subtree and remember the
// owner record. To be called every time before linking the node
// into a tree.
func (nd *Node) Init(item interface{}) *Node {
	nd.Parent, nd.Left, nd.Right = nil, nil, nil
	nd.height, nd.count = 1, 1
	nd.item = item
	return nd
}

// Item return the owner record supplied to Init, nil for nil node.
func (nd *Node) Item() interface{} {
	if nd == nil {
		return nil
	}
	return nd.item
}

// Height of the subtree rooted at this node, 1 for a leaf, 0 for
// nil node.
func (nd *Node) Height() int32 {
	if nd == nil {
		return 0
	}
	return nd.height
}

// Count return the number of nodes in the subtree rooted at this
// node, including itself, 0 for nil node.
func (nd *Node) Count() int32 {
	if nd == nil {
		return 0
	}
	return nd.count
}

// update height and count from children, called after every
// structural change around this node.
func (nd *Node) update() {
	lh, rh := nd.Left.Height(), nd.Right.Height()
	if lh < rh {
		lh = rh
	}
	nd.height = 1 + lh
	nd.count = 1 + nd.Left.Count() + nd.Right.Count()
}

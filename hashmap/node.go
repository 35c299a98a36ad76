package hashmap

// Node is the intrusive chain header, embedded inside the owner
// record it indexes. The hash code is precomputed by the caller and
// compared before falling back to the equality predicate.
type Node struct {
	next  *Node
	hcode uint64
	item  interface{}
}

// Init record the precomputed hash code and the owner record. To be
// called before handing the node to Insert.
func (nd *Node) Init(hcode uint64, item interface{}) *Node {
	nd.next, nd.hcode, nd.item = nil, hcode, item
	return nd
}

// Hashcode return the hash code supplied to Init.
func (nd *Node) Hashcode() uint64 {
	return nd.hcode
}

// Item return the owner record supplied to Init, nil for nil node.
func (nd *Node) Item() interface{} {
	if nd == nil {
		return nil
	}
	return nd.item
}

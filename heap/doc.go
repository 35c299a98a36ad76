// Package heap implement an array-backed indexed binary min-heap.
// Every item carries a back-reference to a variable outside the
// heap that is kept equal to the item's current array slot, so
// holders of a payload can update or remove it in O(log n) without
// searching, the property an expiry index needs. The heap is not
// synchronized, callers lock the owning structure.
package heap

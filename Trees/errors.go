package Trees

import "fmt"

// InvalidSliceError is the panic value of BuildWAVL when the given slice isn't strictly ascending.
type InvalidSliceError[T any] struct {
	I    int //index of the first element out of order
	A, B T   //the elements at I-1 and I
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice is not strictly ascending at %d: %v is not less than %v", e.I, e.A, e.B)
}

// InvariantError is the panic value raised when rebalancing reaches a rank configuration that the
// WAVL rules don't allow. It means the tree is already corrupt, so it is never returned as an error
// and shouldn't be recovered from.
type InvariantError[T any] struct {
	Op      string //the rebalancing walk that failed
	V       T      //value held by the node where the walk stopped
	Gaps    [2]int //rank gaps of that node to the child being fixed and to its sibling
	Details string
}

func (e InvariantError[T]) Error() string {
	return fmt.Sprintf("wavl invariant violated during %s at %v with rank gaps %d,%d: %s", e.Op, e.V, e.Gaps[0], e.Gaps[1], e.Details)
}

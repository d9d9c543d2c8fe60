package Trees

// Op is a rebalancing primitive applied to a node of a WAVLTree.
type Op uint8

const (
	OpRotateLeft Op = iota
	OpRotateRight
	OpPromote
	OpDemote
)

func (o Op) String() string {
	switch o {
	case OpRotateLeft:
		return "rotate-left"
	case OpRotateRight:
		return "rotate-right"
	case OpPromote:
		return "promote"
	case OpDemote:
		return "demote"
	}
	return "unknown"
}

// Observer is called before every rebalancing primitive with the value held by the node it is
// applied to. For rotations that is the node moving down.
// It must not access the tree it observes.
type Observer[T any] func(op Op, v T)

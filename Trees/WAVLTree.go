package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// WAVLTree is a binary search tree with no repeated values. It maintains
// balance through ranks: every node has a rank, an empty child slot has rank 0
// and a leaf has rank 1. The rank of a node exceeds the rank of each of its
// two child slots by 1 or 2. Insertions and removals restore this by promoting,
// demoting and rotating bottom-up, with amortized O(1) rotations per update.
// The height D of the tree is less than 2*log2(n+1).
// Nodes are kept in an arena indexed by S, so S must be wide enough to hold
// the largest size the tree will reach.
// This implementation is not safe for concurrent use. If multiple goroutines
// access a tree concurrently, and at least one of them modifies it, it must be
// synchronized externally, e.g. with a sync.RWMutex held exclusively by Insert,
// Remove and Clear.
// WAVLTree shouldn't be created directly using struct literal.
type WAVLTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
	count     S
	rotations uint
	visited   uint
	observer  Observer[T]
}

var _ Tree[int] = (*WAVLTree[int, uint])(nil)

// NewWAVL returns an empty tree with room for hint values before the arena grows.
func NewWAVL[T cmp.Ordered, S constraints.Unsigned](hint S) *WAVLTree[T, S] {
	return &WAVLTree[T, S]{base: base[T, S]{ifs: make([]info[S], 1, hint+1), vs: make([]T, 0, hint)}}
}

// BuildWAVL builds a tree using the given sorted slice. This is faster than
// repeatedly calling Insert. The slice is handed to the tree and mustn't be
// modified by the caller later.
// The given slice must be sorted in ascending order and mustn't contain
// duplicate elements. If safe==true, this function will check if the
// conditions are met and panic with InvalidSliceError if they are broken.
// Otherwise the check is skipped, and it's up to the user to ensure the
// conditions are met(otherwise the tree will be corrupt).
// Time: O(n).
func BuildWAVL[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *WAVLTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				panic(InvalidSliceError[T]{i, sli[i-1], sli[i]})
			}
		}
	}
	root, ifs := buildIfs(S(len(sli)))
	return &WAVLTree[T, S]{base: base[T, S]{root: root, ifs: ifs, vs: sli}, count: S(len(sli))}
}

// SetObserver installs o to be called on every rotation, promotion and demotion. nil removes it.
func (u *WAVLTree[T, S]) SetObserver(o Observer[T]) {
	u.observer = o
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *WAVLTree[T, S]) Size() uint {
	return uint(u.count)
}

// Rotations performed since the last ResetRotations. A double rotation counts twice.
func (u *WAVLTree[T, S]) Rotations() uint {
	return u.rotations
}

// Visited nodes since the last ResetVisited, counted during descents.
func (u *WAVLTree[T, S]) Visited() uint {
	return u.visited
}

func (u *WAVLTree[T, S]) ResetRotations() {
	u.rotations = 0
}

func (u *WAVLTree[T, S]) ResetVisited() {
	u.visited = 0
}

// RootRank is the rank of the root, 0 for an empty tree. It bounds the height from above.
func (u *WAVLTree[T, S]) RootRank() uint8 {
	return u.ifs[u.root].rk
}

// Clear removes every value at once without any rebalancing work.
// [base.Clear] describes reset. The counters are kept.
func (u *WAVLTree[T, S]) Clear(reset bool) {
	u.base.Clear(reset)
	u.count = 0
}

func (u *WAVLTree[T, S]) notify(op Op, i S) {
	if u.observer != nil {
		u.observer(op, *u.getV(i))
	}
}

func (u *WAVLTree[T, S]) promote(i S) {
	u.notify(OpPromote, i)
	u.ifs[i].rk++
}

func (u *WAVLTree[T, S]) demote(i S) {
	u.notify(OpDemote, i)
	u.ifs[i].rk--
}

func (u *WAVLTree[T, S]) rotateLeft(i S) {
	u.notify(OpRotateLeft, i)
	u.rotations++
	u.base.rotateLeft(i)
}

func (u *WAVLTree[T, S]) rotateRight(i S) {
	u.notify(OpRotateRight, i)
	u.rotations++
	u.base.rotateRight(i)
}

// find the index holding v, 0 if there is none.
// Time: O(D); Space: O(1)
func (u *WAVLTree[T, S]) find(v T) S {
	curI := u.root
	for curI != 0 {
		u.visited++
		if v < *u.getV(curI) {
			curI = u.ifs[curI].l
		} else if v > *u.getV(curI) {
			curI = u.ifs[curI].r
		} else {
			break
		}
	}
	return curI
}

// Insert [Tree.Insert].
// Time: O(D); Space: O(1)
func (u *WAVLTree[T, S]) Insert(v T) bool {
	var p S
	left := false
	for curI := u.root; curI != 0; {
		u.visited++
		p = curI
		if v < *u.getV(curI) {
			curI, left = u.ifs[curI].l, true
		} else if v > *u.getV(curI) {
			curI, left = u.ifs[curI].r, false
		} else {
			return false
		}
	}
	n := u.alloc(v, p)
	u.count++
	if p == 0 {
		u.root = n
		return true
	}
	if left {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	u.balanceInserted(n)
	return true
}

// balanceInserted walks up from the new leaf n while n has the same rank as its parent.
// Promotions may cascade to the root, but at most one single or double rotation happens.
func (u *WAVLTree[T, S]) balanceInserted(n S) {
	for p := u.ifs[n].p; p != 0; n, p = p, u.ifs[p].p {
		if u.gap(p, n) != 0 {
			return
		}
		s := u.sibling(p, n)
		switch u.gap(p, s) {
		case 1:
			u.promote(p)
			continue
		case 2:
		default:
			panic(InvariantError[T]{"insert", *u.getV(p), [2]int{0, u.gap(p, s)}, "sibling gap must be 1 or 2"})
		}
		// n is 1,2: rotate its 1-child up if it is on the outside, otherwise rotate twice.
		if u.ifs[p].r == n {
			if u.gap(n, u.ifs[n].r) == 1 {
				u.rotateLeft(p)
				u.demote(p)
			} else if t := u.ifs[n].l; u.gap(n, t) == 1 {
				u.rotateRight(n)
				u.demote(n)
				u.promote(t)
				u.rotateLeft(p)
				u.demote(p)
			} else {
				panic(InvariantError[T]{"insert", *u.getV(n), [2]int{u.gap(n, u.ifs[n].r), u.gap(n, t)}, "promoted node must have a 1-child"})
			}
		} else {
			if u.gap(n, u.ifs[n].l) == 1 {
				u.rotateRight(p)
				u.demote(p)
			} else if t := u.ifs[n].r; u.gap(n, t) == 1 {
				u.rotateLeft(n)
				u.demote(n)
				u.promote(t)
				u.rotateRight(p)
				u.demote(p)
			} else {
				panic(InvariantError[T]{"insert", *u.getV(n), [2]int{u.gap(n, u.ifs[n].l), u.gap(n, t)}, "promoted node must have a 1-child"})
			}
		}
		return
	}
}

// Remove [Tree.Remove].
// Time: O(D); Space: O(1)
func (u *WAVLTree[T, S]) Remove(v T) bool {
	curI := u.find(v)
	if curI == 0 {
		return false
	}
	u.removeNode(curI)
	u.count--
	return true
}

// removeNode detaches node i. A node with two children takes the value of its
// successor and the successor, which has at most one child, is detached
// instead. The vacated slot is then rebalanced.
func (u *WAVLTree[T, S]) removeNode(i S) {
	var c S
	switch n := u.ifs[i]; {
	case n.l == 0 && n.r == 0:
	case n.l != 0 && n.r != 0:
		s := u.leftmost(n.r)
		*u.getV(i) = *u.getV(s)
		u.removeNode(s)
		return
	case n.l != 0:
		c = n.l
	default:
		c = n.r
	}
	p := u.ifs[i].p
	left := u.ifs[p].l == i
	u.replace(p, i, c)
	u.addFree(i)
	if p != 0 {
		u.balanceDeleted(p, left)
	}
}

// balanceDeleted walks up from the slot of p on the given side, which lost
// rank. Demotions may cascade to the root, but at most one single or double
// rotation happens.
func (u *WAVLTree[T, S]) balanceDeleted(p S, left bool) {
	for p != 0 {
		n, s := u.ifs[p].l, u.ifs[p].r
		if !left {
			n, s = s, n
		}
		switch gn, gs := u.gap(p, n), u.gap(p, s); {
		case gn == 1:
			return
		case gn == 2 && gs == 2 && n == 0 && s == 0: //2,2 leaf
			u.demote(p)
		case gn == 2:
			return
		case gn == 3 && gs == 2:
			u.demote(p)
		case gn == 3 && gs == 1:
			if u.gap(s, u.ifs[s].l) == 2 && u.gap(s, u.ifs[s].r) == 2 {
				u.demote(p)
				u.demote(s)
			} else {
				u.rotateDeleted(p, s, left)
				return
			}
		default:
			panic(InvariantError[T]{"remove", *u.getV(p), [2]int{gn, gs}, "no rebalancing case applies"})
		}
		pp := u.ifs[p].p
		left = u.ifs[pp].l == p
		p = pp
	}
}

// rotateDeleted fixes p, which is 3,1 with its 1-child s not being 2,2. The
// 1-child of s on the far side is rotated up once with s, otherwise the near
// one is rotated up twice.
func (u *WAVLTree[T, S]) rotateDeleted(p, s S, left bool) {
	far, near := u.ifs[s].r, u.ifs[s].l
	if !left {
		far, near = near, far
	}
	if u.gap(s, far) == 1 {
		if left {
			u.rotateLeft(p)
		} else {
			u.rotateRight(p)
		}
		u.promote(s)
		u.demote(p)
		if u.gap(p, u.ifs[p].l) == 2 && u.gap(p, u.ifs[p].r) == 2 {
			u.demote(p)
		}
	} else if u.gap(s, near) == 1 {
		if left {
			u.rotateRight(s)
		} else {
			u.rotateLeft(s)
		}
		u.promote(near)
		u.demote(s)
		if left {
			u.rotateLeft(p)
		} else {
			u.rotateRight(p)
		}
		u.promote(near)
		u.demote(p)
		u.demote(p)
	} else {
		panic(InvariantError[T]{"remove", *u.getV(s), [2]int{u.gap(s, far), u.gap(s, near)}, "sibling must have a 1-child"})
	}
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *WAVLTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *WAVLTree[T, S]) Successor(v T) (T, bool) {
	if curI := u.find(v); curI != 0 {
		if s := u.successor(curI); s != 0 {
			return *u.getV(s), true
		}
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *WAVLTree[T, S]) Predecessor(v T) (T, bool) {
	if curI := u.find(v); curI != 0 {
		if p := u.predecessor(curI); p != 0 {
			return *u.getV(p), true
		}
	}
	return *new(T), false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *WAVLTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return *u.getV(u.leftmost(u.root)), true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *WAVLTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return *u.getV(u.rightmost(u.root)), true
}

// InOrder [Tree.InOrder]. The second value is the rank of the node holding the first.
// Time: f(): O(D) at each call, amortized O(1) over a whole traversal. Space: O(1)
func (u *WAVLTree[T, S]) InOrder() func() (T, uint8, bool) {
	var cur S
	if u.root != 0 {
		cur = u.leftmost(u.root)
	}
	return func() (v T, rk uint8, has bool) {
		if cur == 0 {
			return
		}
		v, rk, has = *u.getV(cur), u.ifs[cur].rk, true
		cur = u.successor(cur)
		return
	}
}

package Trees

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// A node in the Tree.
// The zero value is meaningful: it is the empty slot, rank 0 with no relations.
type info[S constraints.Unsigned] struct {
	l, r, p S
	rk      uint8
}

type base[T any, S constraints.Unsigned] struct {
	root, free S         // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs        []info[S] // ifs[0] is the empty slot and is never written. all index are based on ifs. len(ifs)=len(vs)+1
	vs         []T       // vs[i] corresponds to ifs[i+1].
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// addFree index once. The value is zeroed so the arena doesn't retain it.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a-1] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a rank 1 leaf holding v under parent p. Holes are filled first before appending.
// The returned index is not linked into p yet.
func (u *base[T, S]) alloc(v T, p S) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{p: p, rk: 1}
		*u.getV(i) = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{p: p, rk: 1})
	u.vs = append(u.vs, v)
	return S(len(u.vs))
}

// replace the link from p to old with a link to c. p==0 means old is the root. old must not be 0.
func (u *base[T, S]) replace(p, old, c S) {
	if p == 0 {
		u.root = c
	} else if u.ifs[p].l == old {
		u.ifs[p].l = c
	} else {
		u.ifs[p].r = c
	}
	if c != 0 {
		u.ifs[c].p = p
	}
}

// rotateLeft: x's right child takes x's position.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(x S) {
	y := u.ifs[x].r
	b := u.ifs[y].l
	u.ifs[x].r = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.replace(u.ifs[x].p, x, y)
	u.ifs[y].l = x
	u.ifs[x].p = y
}

// rotateRight: x's left child takes x's position.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(x S) {
	y := u.ifs[x].l
	b := u.ifs[y].r
	u.ifs[x].l = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.replace(u.ifs[x].p, x, y)
	u.ifs[y].r = x
	u.ifs[x].p = y
}

// gap between the rank of p and the rank of the slot c.
func (u *base[T, S]) gap(p, c S) int {
	return int(u.ifs[p].rk) - int(u.ifs[c].rk)
}

// sibling of the non empty child c of p.
func (u *base[T, S]) sibling(p, c S) S {
	if u.ifs[p].l == c {
		return u.ifs[p].r
	}
	return u.ifs[p].l
}

func (u *base[T, S]) leftmost(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// successor of node i in in-order, 0 if i holds the maximum.
// Time: O(D); Space: O(1)
func (u *base[T, S]) successor(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i {
			return p
		}
	}
	return 0
}

// predecessor of node i in in-order, 0 if i holds the minimum.
// Time: O(D); Space: O(1)
func (u *base[T, S]) predecessor(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].r == i {
			return p
		}
	}
	return 0
}

// Clear the tree, also zeroes the stored values if reset is true. O(1) if reset==false. O(size) if reset==true.
// Doesn't allocate new arrays.
func (u *base[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
	}
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free = 0, 0
}

// buildIfs of size n to represent a complete binary tree whose in-order positions are the indexes.
// The rank of each node is the bit length of its subtree size, which is its height.
func buildIfs[S constraints.Unsigned](n S) (root S, ifs []info[S]) {
	ifs = make([]info[S], n+1)
	if n == 0 {
		return
	}
	st := make([][3]S, 0, 2*bits.Len64(uint64(n))) //[left,right,mid]
	root = mid(1, n)
	st = append(st, [3]S{1, n, root})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		ifs[top[2]].rk = uint8(bits.Len64(uint64(top[1] - top[0] + 1)))
		if top[0] < top[2] {
			c := mid(top[0], top[2]-1)
			ifs[top[2]].l, ifs[c].p = c, top[2]
			st = append(st, [3]S{top[0], top[2] - 1, c})
		}
		if top[2] < top[1] {
			c := mid(top[2]+1, top[1])
			ifs[top[2]].r, ifs[c].p = c, top[2]
			st = append(st, [3]S{top[2] + 1, top[1], c})
		}
	}
	return
}

// mid is (a+b)/2 without overflow.
func mid[S constraints.Unsigned](a, b S) S {
	return a + (b-a)>>1
}

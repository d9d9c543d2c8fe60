package Trees

import (
	"errors"
	"fmt"
)

var errCount = errors.New("size doesn't match the number of reachable nodes")

// Corrupt [Tree.Corrupt]. It checks the order of values, the parent links, the rank rules and the size.
// Time: O(n); Space: O(D)
func (u *WAVLTree[T, S]) Corrupt() bool {
	return u.check() != nil
}

// check returns the first violated property found in pre-order, nil if there is none.
func (u *WAVLTree[T, S]) check() error {
	if u.root == 0 {
		if u.count != 0 {
			return errCount
		}
		return nil
	}
	if p := u.ifs[u.root].p; p != 0 {
		return fmt.Errorf("root %v has parent %v", *u.getV(u.root), *u.getV(p))
	}
	type frame struct {
		i      S
		lo, hi S // nodes bounding the values of the subtree, 0 when unbounded
	}
	var n S
	for st := []frame{{i: u.root}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if n++; n > u.count {
			return errCount
		}
		cur, v := u.ifs[top.i], *u.getV(top.i)
		if top.lo != 0 && !(*u.getV(top.lo) < v) || top.hi != 0 && !(v < *u.getV(top.hi)) {
			return fmt.Errorf("%v is out of order", v)
		}
		if cur.l == 0 && cur.r == 0 && cur.rk != 1 {
			return fmt.Errorf("leaf %v has rank %d", v, cur.rk)
		}
		for _, c := range [2]S{cur.l, cur.r} {
			if g := u.gap(top.i, c); g != 1 && g != 2 {
				return fmt.Errorf("%v has rank gap %d", v, g)
			}
			if c != 0 && u.ifs[c].p != top.i {
				return fmt.Errorf("child %v of %v has another parent", *u.getV(c), v)
			}
		}
		if cur.l != 0 {
			st = append(st, frame{cur.l, top.lo, top.i})
		}
		if cur.r != 0 {
			st = append(st, frame{cur.r, top.i, top.hi})
		}
	}
	if n != u.count {
		return errCount
	}
	return nil
}

// Depth is the number of nodes on the longest path from the root, 0 for an empty tree.
// Time: O(n); Space: O(D)
func (u *WAVLTree[T, S]) Depth() uint {
	var d uint
	if u.root == 0 {
		return d
	}
	type frame struct {
		i S
		d uint
	}
	for st := []frame{{u.root, 1}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		d = max(d, top.d)
		if l := u.ifs[top.i].l; l != 0 {
			st = append(st, frame{l, top.d + 1})
		}
		if r := u.ifs[top.i].r; r != 0 {
			st = append(st, frame{r, top.d + 1})
		}
	}
	return d
}

package main

import (
	"fmt"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/wavl/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	implWAVL    = "wavl"
	implGodsAVL = "gods-avl"
	implGodsRB  = "gods-rb"
	implBTree   = "btree"
	implLLRB    = "llrb"
)

var impls = []string{implWAVL, implGodsAVL, implGodsRB, implBTree, implLLRB}

type (
	// orderedSet is what the workload needs from a structure under measurement.
	orderedSet interface {
		Insert(k int32) bool
		Remove(k int32) bool
		Has(k int32) bool
		Len() int
	}

	// instrumented sets count the rebalancing work of each operation.
	instrumented interface {
		ResetRotations()
		ResetVisited()
		Rotations() uint
		Visited() uint
	}

	// shaped sets report their height.
	shaped interface {
		RootRank() uint8
		Depth() uint
	}

	wavlSet struct {
		*Trees.WAVLTree[int32, uint32]
	}

	// godsTree is the part of the API shared by the gods AVL and red-black trees.
	godsTree interface {
		Put(key, value interface{})
		Get(key interface{}) (value interface{}, found bool)
		Remove(key interface{})
		Size() int
	}

	godsSet struct {
		t godsTree
	}

	btreeSet struct {
		t *btree.BTreeG[int32]
	}

	llrbSet struct {
		t *llrb.LLRB
	}
)

func newSet(impl string, hint int) (orderedSet, error) {
	switch impl {
	case implWAVL:
		return wavlSet{Trees.NewWAVL[int32, uint32](uint32(hint))}, nil
	case implGodsAVL:
		return godsSet{avltree.NewWith(utils.Int32Comparator)}, nil
	case implGodsRB:
		return godsSet{redblacktree.NewWith(utils.Int32Comparator)}, nil
	case implBTree:
		return btreeSet{btree.NewOrderedG[int32](32)}, nil
	case implLLRB:
		return llrbSet{llrb.New()}, nil
	}
	return nil, fmt.Errorf("unknown implementation %q, expected one of %v", impl, impls)
}

func (s wavlSet) Len() int {
	return int(s.Size())
}

func (s godsSet) Insert(k int32) bool {
	if _, found := s.t.Get(k); found {
		return false
	}
	s.t.Put(k, struct{}{})
	return true
}

func (s godsSet) Remove(k int32) bool {
	if _, found := s.t.Get(k); !found {
		return false
	}
	s.t.Remove(k)
	return true
}

func (s godsSet) Has(k int32) bool {
	_, found := s.t.Get(k)
	return found
}

func (s godsSet) Len() int {
	return s.t.Size()
}

func (s btreeSet) Insert(k int32) bool {
	_, replaced := s.t.ReplaceOrInsert(k)
	return !replaced
}

func (s btreeSet) Remove(k int32) bool {
	_, found := s.t.Delete(k)
	return found
}

func (s btreeSet) Has(k int32) bool {
	return s.t.Has(k)
}

func (s btreeSet) Len() int {
	return s.t.Len()
}

func (s llrbSet) Insert(k int32) bool {
	if s.t.Has(llrb.Int(k)) {
		return false
	}
	s.t.InsertNoReplace(llrb.Int(k))
	return true
}

func (s llrbSet) Remove(k int32) bool {
	return s.t.Delete(llrb.Int(k)) != nil
}

func (s llrbSet) Has(k int32) bool {
	return s.t.Has(llrb.Int(k))
}

func (s llrbSet) Len() int {
	return s.t.Len()
}

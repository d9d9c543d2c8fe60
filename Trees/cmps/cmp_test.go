package cmps

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/wavl/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares Trees.WAVLTree with https://github.com/emirpasic/gods AVL and red-black trees,
// https://github.com/google/btree and https://github.com/petar/GoLLRB using the same mixed workload:
// a fill of treeSize random keys followed by one insert, one lookup and one removal per iteration.

const (
	treeSize = 1 << 16
	keyRange = treeSize * 4
)

var sideEff bool

func keys(b *testing.B) []int {
	b.Helper()
	r := rand.New(rand.NewSource(0))
	ks := make([]int, treeSize)
	for i := range ks {
		ks[i] = r.Intn(keyRange)
	}
	return ks
}

func BenchmarkWAVLTree_Mixed(b *testing.B) {
	ks := keys(b)
	t := Trees.NewWAVL[int, uint32](treeSize)
	for _, k := range ks {
		t.Insert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		t.Insert(ks[i%treeSize] + 1)
		sideEff = t.Has(ks[(i+1)%treeSize])
		t.Remove(ks[(i+2)%treeSize])
	}
}

func BenchmarkGodsAVL_Mixed(b *testing.B) {
	ks := keys(b)
	t := avltree.NewWithIntComparator()
	for _, k := range ks {
		t.Put(k, struct{}{})
	}
	b.ResetTimer()
	for i := range b.N {
		t.Put(ks[i%treeSize]+1, struct{}{})
		_, sideEff = t.Get(ks[(i+1)%treeSize])
		t.Remove(ks[(i+2)%treeSize])
	}
}

func BenchmarkGodsRedBlack_Mixed(b *testing.B) {
	ks := keys(b)
	t := redblacktree.NewWithIntComparator()
	for _, k := range ks {
		t.Put(k, struct{}{})
	}
	b.ResetTimer()
	for i := range b.N {
		t.Put(ks[i%treeSize]+1, struct{}{})
		_, sideEff = t.Get(ks[(i+1)%treeSize])
		t.Remove(ks[(i+2)%treeSize])
	}
}

func BenchmarkBTree_Mixed(b *testing.B) {
	ks := keys(b)
	t := btree.NewOrderedG[int](32)
	for _, k := range ks {
		t.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		t.ReplaceOrInsert(ks[i%treeSize] + 1)
		sideEff = t.Has(ks[(i+1)%treeSize])
		t.Delete(ks[(i+2)%treeSize])
	}
}

func BenchmarkLLRB_Mixed(b *testing.B) {
	ks := keys(b)
	t := llrb.New()
	for _, k := range ks {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := range b.N {
		t.ReplaceOrInsert(llrb.Int(ks[i%treeSize] + 1))
		sideEff = t.Has(llrb.Int(ks[(i+1)%treeSize]))
		t.Delete(llrb.Int(ks[(i+2)%treeSize]))
	}
}

func BenchmarkWAVLTree_Successor(b *testing.B) {
	ks := keys(b)
	t := Trees.NewWAVL[int, uint32](treeSize)
	for _, k := range ks {
		t.Insert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = t.Successor(ks[i%treeSize])
	}
}

func BenchmarkBTree_Successor(b *testing.B) {
	ks := keys(b)
	t := btree.NewOrderedG[int](32)
	for _, k := range ks {
		t.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		k, first := ks[i%treeSize], true
		sideEff = false
		t.AscendGreaterOrEqual(k, func(item int) bool {
			if first && item == k {
				first = false
				return true
			}
			sideEff = true
			return false
		})
	}
}

func BenchmarkGodsRedBlack_Successor(b *testing.B) {
	ks := keys(b)
	t := redblacktree.NewWithIntComparator()
	for _, k := range ks {
		t.Put(k, struct{}{})
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = t.Ceiling(ks[i%treeSize] + 1)
	}
}

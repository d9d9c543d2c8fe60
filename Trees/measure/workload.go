package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

type opKind int

const (
	opInsert opKind = iota
	opFind
	opRemove
	numOps
)

var opNames = [numOps]string{"insert", "find", "remove"}

// checkEvery is how many iterations run between two context checks.
const checkEvery = 1 << 12

type (
	opStats struct {
		Count     uint
		Rotations uint
		Visited   uint
		Elapsed   time.Duration
	}

	report struct {
		Impl         string
		Filled       int
		Final        int
		Instrumented bool
		Shaped       bool
		RootRank     uint8
		Depth        uint
		Ops          [numOps]opStats
	}

	// workload fills a set with nodes random keys and then runs ops random
	// operations on it: inserts and lookups of fresh random keys, and removals of
	// keys drawn from the ones inserted by the fill.
	workload struct {
		nodes, ops int
		rng        *rand.Rand
	}
)

func (w *workload) run(ctx context.Context, impl string, s orderedSet) (*report, error) {
	keys := make([]int32, 0, w.nodes)
	for i := 0; s.Len() < w.nodes; i++ {
		if k := int32(w.rng.Uint32()); s.Insert(k) {
			keys = append(keys, k)
		}
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("filling %s: %w", impl, err)
			}
		}
	}
	r := &report{Impl: impl, Filled: s.Len()}
	instr, isInstr := s.(instrumented)
	r.Instrumented = isInstr
	for i := range w.ops {
		op := opKind(w.rng.Intn(int(numOps)))
		toRemove := keys[w.rng.Intn(len(keys))]
		toInsert := int32(w.rng.Uint32())
		if isInstr {
			instr.ResetRotations()
			instr.ResetVisited()
		}
		start := time.Now()
		switch op {
		case opInsert:
			s.Insert(toInsert)
		case opFind:
			s.Has(toInsert)
		case opRemove:
			s.Remove(toRemove)
		}
		st := &r.Ops[op]
		st.Elapsed += time.Since(start)
		st.Count++
		if isInstr {
			st.Rotations += instr.Rotations()
			st.Visited += instr.Visited()
		}
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("running operations on %s: %w", impl, err)
			}
		}
	}
	r.Final = s.Len()
	if sh, ok := s.(shaped); ok {
		r.Shaped, r.RootRank, r.Depth = true, sh.RootRank(), sh.Depth()
	}
	return r, nil
}

func average(total, count uint) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

func (r *report) log(log zerolog.Logger) {
	ev := log.Info().Str("impl", r.Impl).Int("filled", r.Filled).Int("final", r.Final)
	if r.Shaped {
		ev = ev.Uint8("rootRank", r.RootRank).Uint("depth", r.Depth)
	}
	ev.Msg("tree")
	for op, st := range r.Ops {
		ev := log.Info().Str("op", opNames[op]).Uint("count", st.Count).Dur("elapsed", st.Elapsed)
		if r.Instrumented {
			ev = ev.Uint("rotations", st.Rotations).Float64("avgRotations", average(st.Rotations, st.Count)).
				Uint("visited", st.Visited).Float64("avgVisited", average(st.Visited, st.Count))
		}
		ev.Msg("operations")
	}
}

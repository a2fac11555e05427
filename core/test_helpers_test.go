// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for qroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only; no *testing.T usage inside goroutines.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/qroute/core"
)

// Common qubit ids used across core tests.
const (
	Q0 = 0
	Q1 = 1
	Q2 = 2
	Q3 = 3
	Q4 = 4

	QNegative = -1
	QMissing  = 99
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0.0
	WeightNeg = -2.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight3   = 3.0
	Weight5   = 5.0
)

// NReaders is the number of concurrent readers used by the sealed-sharing test.
const NReaders = 50

// NewLine RETURNS a sealed weighted graph 0-1-2-3 with weights 2, 3, 5.
func NewLine(t *testing.T, directed bool) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted())
	_, err := g.AddEdge(Q0, Q1, Weight2)
	MustNoError(t, err, "AddEdge(0,1,2)")
	_, err = g.AddEdge(Q1, Q2, Weight3)
	MustNoError(t, err, "AddEdge(1,2,3)")
	_, err = g.AddEdge(Q2, Q3, Weight5)
	MustNoError(t, err, "AddEdge(2,3,5)")
	g.Seal()

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: expected true", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: expected false", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d, want %d", op, got, want)
}

// MustEqualInts FAILS the test if the two int slices differ in length or content.
func MustEqualInts(t *testing.T, got, want []int, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", op, got, want)
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: qroute/builder
//
// topology.go - deterministic coupling-map generators.
//
// Contract:
//   • Generators return plain []Connection (and Weights), never a graph:
//     they produce the same kind of data a provider would, so the result
//     goes through BuildGraph like any real device.
//   • Qubit indices are dense: 0..n-1, row-major for 2D layouts.
//   • Emission order is documented per generator and stable.
//   • Validation errors are sentinels wrapped with the method name.
//
// Determinism:
//   • Deterministic for fixed arguments; stochastic generators take an
//     explicit *rand.Rand and are deterministic for a fixed seed.

package builder

import (
	"fmt"
	"math/rand"
)

// Line returns the couplings of an n-qubit chain 0-1-…-(n-1).
// Emission order: (i, i+1) for i ascending.
// Complexity: O(n).
func Line(n int) ([]Connection, error) {
	if n < MinLineNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodLine, n, MinLineNodes, ErrTooFewVertices)
	}

	out := make([]Connection, 0, n-1)
	for i := 0; i+1 < n; i++ {
		out = append(out, Connection{From: i, To: i + 1})
	}

	return out, nil
}

// Ring returns the couplings of an n-qubit cycle: Line(n) plus (n-1, 0).
// Complexity: O(n).
func Ring(n int) ([]Connection, error) {
	if n < MinRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRing, n, MinRingNodes, ErrTooFewVertices)
	}

	out, _ := Line(n) // n >= MinRingNodes > MinLineNodes
	out = append(out, Connection{From: n - 1, To: 0})

	return out, nil
}

// Grid returns the couplings of a rows×cols nearest-neighbor lattice.
// Qubit (r,c) has index r*cols + c.
// Emission order: for each cell in row-major order, Right then Bottom.
// Complexity: O(rows*cols).
func Grid(rows, cols int) ([]Connection, error) {
	if rows < MinGridDim || cols < MinGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
	}

	out := make([]Connection, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				out = append(out, Connection{From: u, To: u + 1})
			}
			if r+1 < rows {
				out = append(out, Connection{From: u, To: u + cols})
			}
		}
	}

	return out, nil
}

// HeavySquare returns a rows×cols grid where every lattice coupling is
// subdivided by a bridge qubit, the degree-≤4 "heavy" layout used by
// fixed-frequency devices. Lattice qubits keep indices 0..rows*cols-1;
// bridge qubits follow in Grid emission order.
//
// Each lattice coupling (u,v) becomes (u,b),(b,v) for its bridge b.
// The total qubit count is rows*cols + len(Grid(rows, cols)).
// Complexity: O(rows*cols).
func HeavySquare(rows, cols int) ([]Connection, int, error) {
	lattice, err := Grid(rows, cols)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", MethodHeavySquare, err)
	}

	next := rows * cols
	out := make([]Connection, 0, 2*len(lattice))
	for _, c := range lattice {
		out = append(out, Connection{From: c.From, To: next}, Connection{From: next, To: c.To})
		next++
	}

	return out, next, nil
}

// RandomCoupling samples couplings over n qubits with independent
// probability p per ordered pair (directed) or unordered pair i<j (undirected).
// rng is required when 0 < p < 1; p ∈ {0,1} is deterministic without it.
// Emission order: i ascending, then j ascending.
// Complexity: O(n²).
func RandomCoupling(n int, p float64, directed bool, rng *rand.Rand) ([]Connection, error) {
	if n < MinRandomNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomCoupling, n, MinRandomNodes, ErrTooFewVertices)
	}
	if p < MinProbability || p > MaxProbability {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			MethodRandomCoupling, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	if rng == nil && p > MinProbability && p < MaxProbability {
		return nil, fmt.Errorf("%s: %w", MethodRandomCoupling, ErrNeedRandSource)
	}

	// keep reports the Bernoulli outcome for one candidate pair.
	keep := func() bool {
		if rng == nil {
			return p == MaxProbability
		}
		return rng.Float64() < p
	}

	var out []Connection
	for i := 0; i < n; i++ {
		j := i + 1
		if directed {
			j = 0
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if keep() {
				out = append(out, Connection{From: i, To: j})
			}
		}
	}

	return out, nil
}

// UniformWeights assigns each coupling a weight drawn from U[lo,hi).
// lo must be > 0 and hi > lo. Repeated pairs get one draw each; the
// last draw wins in the returned map.
// Complexity: O(len(conns)).
func UniformWeights(conns []Connection, lo, hi float64, rng *rand.Rand) (Weights, error) {
	if lo <= 0 || hi <= lo {
		return nil, fmt.Errorf("%s: [%g,%g): %w", MethodUniformWeights, lo, hi, ErrInvalidWeightRange)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodUniformWeights, ErrNeedRandSource)
	}

	out := make(Weights, len(conns))
	for _, c := range conns {
		out[c] = lo + rng.Float64()*(hi-lo)
	}

	return out, nil
}

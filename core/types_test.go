// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph configuration, weight policy and lifecycle contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qroute/core"
)

// TestGraph_Options ASSERTS GraphOption flags are applied correctly.
func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	MustFalse(t, g.Directed(), "Directed() default must be false")
	MustFalse(t, g.Weighted(), "Weighted() default must be false")
	MustFalse(t, g.Sealed(), "Sealed() default must be false")

	dg := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	MustTrue(t, dg.Directed(), "WithDirected(true)")
	MustTrue(t, dg.Weighted(), "WithWeighted()")
}

// TestGraph_VertexLifecycle ASSERTS AddVertex/HasVertex invariants.
func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddVertex(QNegative), core.ErrNegativeNode, "AddVertex(-1)")

	MustNoError(t, g.AddVertex(Q3), "AddVertex(3)")
	MustNoError(t, g.AddVertex(Q1), "AddVertex(1)")
	MustNoError(t, g.AddVertex(Q3), "AddVertex(3) duplicate")
	MustEqualInt(t, g.VertexCount(), 2, "VertexCount after duplicate")
	MustEqualInts(t, g.Vertices(), []int{Q1, Q3}, "Vertices() sorted")
	MustFalse(t, g.HasVertex(QMissing), "HasVertex(missing)")

	deg, err := g.OutDegree(Q3)
	MustNoError(t, err, "OutDegree(3)")
	MustEqualInt(t, deg, 0, "isolated vertex out-degree")

	_, err = g.OutDegree(QMissing)
	MustErrorIs(t, err, core.ErrVertexNotFound, "OutDegree(missing)")
}

// TestGraph_WeightPolicy ASSERTS the unit-weight and positive-weight rules.
func TestGraph_WeightPolicy(t *testing.T) {
	ug := core.NewGraph()
	_, err := ug.AddEdge(Q0, Q1, Weight2)
	MustErrorIs(t, err, core.ErrBadWeight, "unweighted AddEdge(0,1,2)")
	_, err = ug.AddEdge(Q0, Q1, core.UnitWeight)
	MustNoError(t, err, "unweighted AddEdge(0,1,1)")

	wg := core.NewGraph(core.WithWeighted())
	for _, w := range []float64{Weight0, WeightNeg, math.NaN(), math.Inf(1)} {
		_, err = wg.AddEdge(Q0, Q1, w)
		MustErrorIs(t, err, core.ErrBadWeight, "weighted AddEdge with invalid weight")
	}
	MustEqualInt(t, wg.EdgeCount(), 0, "rejected edges must not be stored")
	MustEqualInt(t, wg.VertexCount(), 0, "rejected edges must not register vertices")

	_, err = wg.AddEdge(Q2, Q2, Weight1)
	MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge(2,2)")
	_, err = wg.AddEdge(QNegative, Q2, Weight1)
	MustErrorIs(t, err, core.ErrNegativeNode, "AddEdge(-1,2)")
}

// TestGraph_Seal ASSERTS that a sealed graph rejects every mutation.
func TestGraph_Seal(t *testing.T) {
	g := NewLine(t, false)
	MustTrue(t, g.Sealed(), "Sealed() after Seal")

	MustErrorIs(t, g.AddVertex(Q4), core.ErrSealed, "AddVertex after Seal")
	_, err := g.AddEdge(Q3, Q4, Weight1)
	MustErrorIs(t, err, core.ErrSealed, "AddEdge after Seal")
	MustFalse(t, g.HasVertex(Q4), "sealed graph must not gain vertices")

	g.Seal() // idempotent
	MustTrue(t, g.Sealed(), "Seal twice")
}

// TestGraph_Stats ASSERTS the Stats snapshot.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	MustNoError(t, g.AddVertex(Q4), "AddVertex(4)")
	_, err := g.AddEdge(Q0, Q1, Weight5)
	MustNoError(t, err, "AddEdge(0,1,5)")
	_, err = g.AddEdge(Q1, Q2, Weight2)
	MustNoError(t, err, "AddEdge(1,2,2)")

	s := g.Stats()
	MustFalse(t, s.Directed, "Stats.Directed")
	MustTrue(t, s.Weighted, "Stats.Weighted")
	MustEqualInt(t, s.VertexCount, 4, "Stats.VertexCount")
	MustEqualInt(t, s.EdgeCount, 4, "Stats.EdgeCount counts mirrors")
	MustEqualInt(t, s.IsolatedCount, 1, "Stats.IsolatedCount")
	MustTrue(t, s.MinWeight == Weight2, "Stats.MinWeight")
	MustTrue(t, s.MaxWeight == Weight5, "Stats.MaxWeight")

	empty := core.NewGraph().Stats()
	MustEqualInt(t, empty.EdgeCount, 0, "empty Stats.EdgeCount")
	MustTrue(t, empty.MinWeight == 0 && empty.MaxWeight == 0, "empty Stats weights")
}

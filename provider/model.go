// SPDX-License-Identifier: MIT
// Package: qroute/provider
//
// model.go - Device, Gate and the Provider interface.

package provider

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qroute/builder"
)

// Provider fetches the calibration snapshot of a named device.
// Implementations must be safe for concurrent use.
type Provider interface {
	Fetch(ctx context.Context, device string) (*Device, error)
}

// Gate is one calibrated operation on a set of qubits.
type Gate struct {
	Name       string
	Qubits     []int
	Parameters map[string]float64
}

// Device is a snapshot of a device's topology and calibration.
type Device struct {
	Name          string
	NumQubits     int
	CouplingMap   [][2]int
	Gates         []Gate
	RequiresToken bool
}

// Connections returns the coupling map in builder form, in snapshot order.
func (d *Device) Connections() []builder.Connection {
	out := make([]builder.Connection, len(d.CouplingMap))
	for i, p := range d.CouplingMap {
		out[i] = builder.Connection{From: p[0], To: p[1]}
	}

	return out
}

// Weights collects param from every two-qubit gate into per-pair weights.
// When several gates act on the same ordered pair, the first one seen wins.
// Values are not range-checked here; BuildGraph rejects non-positive ones.
func (d *Device) Weights(param string) (builder.Weights, error) {
	w := make(builder.Weights)
	for _, g := range d.Gates {
		if len(g.Qubits) != 2 {
			continue
		}
		v, ok := g.Parameters[param]
		if !ok {
			continue
		}
		key := builder.Connection{From: g.Qubits[0], To: g.Qubits[1]}
		if _, seen := w[key]; !seen {
			w[key] = v
		}
	}
	if len(w) == 0 {
		return nil, fmt.Errorf("%w: %q on device %q", ErrUnknownParameter, param, d.Name)
	}

	return w, nil
}

// clone returns a deep copy so callers cannot mutate provider state.
func (d *Device) clone() *Device {
	out := *d
	out.CouplingMap = append([][2]int(nil), d.CouplingMap...)
	out.Gates = make([]Gate, len(d.Gates))
	for i, g := range d.Gates {
		out.Gates[i] = Gate{Name: g.Name, Qubits: append([]int(nil), g.Qubits...)}
		if g.Parameters != nil {
			out.Gates[i].Parameters = make(map[string]float64, len(g.Parameters))
			for k, v := range g.Parameters {
				out.Gates[i].Parameters[k] = v
			}
		}
	}

	return &out
}

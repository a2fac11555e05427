// SPDX-License-Identifier: MIT
// Package: qroute/provider
//
// snapshot.go - snapshot wire types and per-extension decoders.

package provider

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// snapshot is the on-disk form of a Device shared by every format.
type snapshot struct {
	Name          string         `yaml:"name" validate:"required"`
	NumQubits     int            `yaml:"num_qubits" validate:"min=1"`
	RequiresToken bool           `yaml:"requires_token"`
	CouplingMap   [][]int        `yaml:"coupling_map" validate:"dive,len=2,dive,min=0"`
	Gates         []gateSnapshot `yaml:"gates" validate:"dive"`
}

type gateSnapshot struct {
	Name       string             `yaml:"name" validate:"required"`
	Qubits     []int              `yaml:"qubits" validate:"min=1,dive,min=0"`
	Parameters map[string]float64 `yaml:"parameters"`
}

// snapshotDecoder turns raw file content into a snapshot.
type snapshotDecoder interface {
	Decode(src []byte, filename string) (*snapshot, error)
}

// snapshotExtensions lists the probed file extensions in priority order.
var snapshotExtensions = []string{".yaml", ".yml", ".json", ".hcl"}

// decoders maps each extension to its format. JSON is a YAML subset.
var decoders = map[string]snapshotDecoder{
	".yaml": yamlDecoder{},
	".yml":  yamlDecoder{},
	".json": yamlDecoder{},
	".hcl":  hclDecoder{},
}

// yamlDecoder decodes YAML and JSON snapshots. Unknown keys are rejected.
type yamlDecoder struct{}

func (yamlDecoder) Decode(src []byte, _ string) (*snapshot, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var s snapshot
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}

	return &s, nil
}

// hclSnapshotFile is the top-level body of an .hcl snapshot.
type hclSnapshotFile struct {
	Device hclDevice `hcl:"device,block"`
}

type hclDevice struct {
	Name          string    `hcl:"name,label"`
	NumQubits     int       `hcl:"num_qubits"`
	RequiresToken bool      `hcl:"requires_token,optional"`
	CouplingMap   [][]int   `hcl:"coupling_map,optional"`
	Gates         []hclGate `hcl:"gate,block"`
}

type hclGate struct {
	Name       string             `hcl:"name,label"`
	Qubits     []int              `hcl:"qubits"`
	Parameters map[string]float64 `hcl:"parameters,optional"`
}

// hclDecoder decodes HCL snapshots with gohcl.
type hclDecoder struct{}

func (hclDecoder) Decode(src []byte, filename string) (*snapshot, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	var body hclSnapshotFile
	if diags = gohcl.DecodeBody(file.Body, nil, &body); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}

	d := body.Device
	s := &snapshot{
		Name:          d.Name,
		NumQubits:     d.NumQubits,
		RequiresToken: d.RequiresToken,
		CouplingMap:   d.CouplingMap,
		Gates:         make([]gateSnapshot, len(d.Gates)),
	}
	for i, g := range d.Gates {
		s.Gates[i] = gateSnapshot{Name: g.Name, Qubits: g.Qubits, Parameters: g.Parameters}
	}

	return s, nil
}

// toDevice validates s and converts it. Qubit indices must lie in [0, NumQubits).
func (s *snapshot) toDevice() (*Device, error) {
	if err := validate.Struct(s); err != nil {
		return nil, err
	}

	d := &Device{
		Name:          s.Name,
		NumQubits:     s.NumQubits,
		RequiresToken: s.RequiresToken,
		CouplingMap:   make([][2]int, len(s.CouplingMap)),
		Gates:         make([]Gate, len(s.Gates)),
	}
	for i, p := range s.CouplingMap {
		if p[0] >= s.NumQubits || p[1] >= s.NumQubits {
			return nil, fmt.Errorf("coupling_map[%d] = %v: qubit beyond num_qubits=%d", i, p, s.NumQubits)
		}
		d.CouplingMap[i] = [2]int{p[0], p[1]}
	}
	for i, g := range s.Gates {
		for _, q := range g.Qubits {
			if q >= s.NumQubits {
				return nil, fmt.Errorf("gate %q: qubit %d beyond num_qubits=%d", g.Name, q, s.NumQubits)
			}
		}
		d.Gates[i] = Gate{Name: g.Name, Qubits: g.Qubits, Parameters: g.Parameters}
	}

	return d, nil
}

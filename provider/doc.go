// Package provider supplies device calibration snapshots: the coupling map
// and per-gate parameters of a named quantum device.
//
// A Provider is the only place that talks to the outside world. Everything
// downstream (builder, dijkstra, direction) receives plain data, so graph
// logic never depends on a live session.
//
// Implementations:
//
//   - FileProvider reads <SnapshotDir>/<device>.{yaml,yml,json,hcl}. YAML and
//     JSON are decoded with yaml.v3, HCL with hashicorp/hcl/v2.
//   - MemoryProvider serves devices registered in process.
//
// Every failure is a *ProviderError; errors.Is(err, ErrProvider) holds and the
// cause (ErrUnknownDevice, ErrUnauthenticated, ErrMalformedSnapshot, or a
// context error) is reachable with errors.Is.
//
// Credentials live in Config, outside the routing core. An empty Config.Token
// falls back to the QROUTE_TOKEN environment variable.
//
// A YAML snapshot looks like:
//
//	name: line3
//	num_qubits: 3
//	coupling_map: [[0, 1], [1, 2]]
//	gates:
//	  - name: cx0_1
//	    qubits: [0, 1]
//	    parameters: {gate_length: 2.0}
//
// and the HCL equivalent:
//
//	device "line3" {
//	  num_qubits   = 3
//	  coupling_map = [[0, 1], [1, 2]]
//	  gate "cx0_1" {
//	    qubits     = [0, 1]
//	    parameters = { gate_length = 2.0 }
//	  }
//	}
package provider

// Package qroute computes routes between qubits on the fixed coupling map of a
// quantum device.
//
// A device's connectivity (which qubit pairs support a two-qubit gate, and the
// calibrated cost of each) is fetched from a provider, turned into an immutable
// graph, and queried for minimum-cost paths. Directed coupling maps keep gate
// orientation; undirected ones mirror every coupling. Weighted builds use one
// gate parameter per coupling (for example its duration); unweighted builds
// count hops.
//
// Layout:
//
//	core/       sealed qubit Graph, Edge and sentinel errors
//	builder/    BuildGraph from coupling pairs and weights; topology generators
//	dijkstra/   single-source distances and FindPath with deterministic ties
//	bfs/        hop-count reachability
//	provider/   Provider interface, Device snapshots, file and memory providers
//	direction/  two-qubit gate orientation extraction and persistence
//	pathfinder/ provider → builder → dijkstra facade with logging
//	config/     YAML + environment configuration
//	logging/    zap logger construction
//	cmd/qroute  command-line interface (path, reach, directions)
//
// Quick start:
//
//	p, _ := provider.NewFileProvider(provider.Config{SnapshotDir: "devices"})
//	pf, err := pathfinder.New(ctx, p, "ibm_line", pathfinder.WithWeighted("gate_length"))
//	if err != nil {
//	    return err
//	}
//	res, err := pf.FindPath(0, 5)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // expected on directed or sparse devices
//	}
//	fmt.Println(res)
package qroute

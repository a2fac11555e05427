// SPDX-License-Identifier: MIT
// Package: qroute/provider
//
// file.go - FileProvider, reading device snapshots from disk.

package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileProvider serves device snapshots from a directory.
type FileProvider struct {
	cfg    Config
	logger *zap.Logger
}

// Option configures a FileProvider.
type Option func(*FileProvider)

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("provider: WithLogger(nil)")
	}
	return func(p *FileProvider) {
		p.logger = l
	}
}

// NewFileProvider validates cfg and returns a provider reading from cfg.SnapshotDir.
func NewFileProvider(cfg Config, opts ...Option) (*FileProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("provider: invalid config: %w", err)
	}

	p := &FileProvider{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Fetch loads <SnapshotDir>/<device>.<ext>, probing .yaml, .yml, .json and
// .hcl in that order.
//
// Errors (all *ProviderError):
//   - ErrUnknownDevice if no snapshot file exists or the name is not a plain file name.
//   - ErrMalformedSnapshot if decoding or validation fails, or the snapshot
//     names a different device.
//   - ErrUnauthenticated if the snapshot requires a token and none resolves.
//   - ctx.Err() if ctx is already done.
func (p *FileProvider) Fetch(ctx context.Context, device string) (*Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, newProviderError(device, OpFetch, err)
	}
	if device == "" || device == "." || device == ".." || filepath.Base(device) != device {
		return nil, newProviderError(device, OpFetch, ErrUnknownDevice)
	}

	path, dec, err := p.locate(device)
	if err != nil {
		return nil, newProviderError(device, OpFetch, err)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, newProviderError(device, OpRead, err)
	}

	snap, err := dec.Decode(src, path)
	if err != nil {
		return nil, newProviderError(device, OpDecode, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err))
	}
	dev, err := snap.toDevice()
	if err != nil {
		return nil, newProviderError(device, OpValidate, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err))
	}
	if dev.Name != device {
		return nil, newProviderError(device, OpValidate,
			fmt.Errorf("%w: snapshot describes %q", ErrMalformedSnapshot, dev.Name))
	}

	if dev.RequiresToken && p.cfg.ResolvedToken() == "" {
		return nil, newProviderError(device, OpAuth, ErrUnauthenticated)
	}

	p.logger.Debug("device snapshot loaded",
		zap.String("device", device),
		zap.String("path", path),
		zap.Int("qubits", dev.NumQubits),
		zap.Int("couplings", len(dev.CouplingMap)),
		zap.Int("gates", len(dev.Gates)),
	)

	return dev, nil
}

// locate returns the first existing snapshot file for device.
func (p *FileProvider) locate(device string) (string, snapshotDecoder, error) {
	for _, ext := range snapshotExtensions {
		path := filepath.Join(p.cfg.SnapshotDir, device+ext)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, err
		}
		if info.IsDir() {
			continue
		}

		return path, decoders[ext], nil
	}

	return "", nil, ErrUnknownDevice
}

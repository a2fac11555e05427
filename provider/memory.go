// SPDX-License-Identifier: MIT
// Package: qroute/provider
//
// memory.go - MemoryProvider, an in-memory Provider.

package provider

import (
	"context"
	"sync"
)

// MemoryProvider serves devices registered in process. Fetch returns deep
// copies, so callers may mutate results freely.
type MemoryProvider struct {
	mu      sync.RWMutex
	devices map[string]*Device
}

// NewMemoryProvider registers devices by Name.
func NewMemoryProvider(devices ...*Device) *MemoryProvider {
	p := &MemoryProvider{devices: make(map[string]*Device, len(devices))}
	for _, d := range devices {
		p.Add(d)
	}

	return p
}

// Add registers or replaces d under d.Name.
func (p *MemoryProvider) Add(d *Device) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.devices[d.Name] = d.clone()
}

// Fetch implements Provider.
func (p *MemoryProvider) Fetch(ctx context.Context, device string) (*Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, newProviderError(device, OpFetch, err)
	}

	p.mu.RLock()
	d, ok := p.devices[device]
	p.mu.RUnlock()
	if !ok {
		return nil, newProviderError(device, OpFetch, ErrUnknownDevice)
	}

	return d.clone(), nil
}

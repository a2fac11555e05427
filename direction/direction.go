// SPDX-License-Identifier: MIT
// Package: qroute/direction
//
// direction.go - gate orientation extraction and the directions artifact.

package direction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/provider"
)

// DefaultFileName is the artifact written by WithSaveToFile("").
const DefaultFileName = "directions.txt"

// Orientation flags.
const (
	Reversed = 0 // qubits[0] > qubits[1]
	Forward  = 1
)

// ErrLengthMismatch indicates that names and flags differ in length.
var ErrLengthMismatch = errors.New("direction: names and flags differ in length")

// Extract filters gates acting on more than one qubit and returns their names
// and orientation flags as parallel slices, in input order.
func Extract(gates []provider.Gate) (names []string, flags []int) {
	names = make([]string, 0, len(gates))
	flags = make([]int, 0, len(gates))
	for _, g := range gates {
		if len(g.Qubits) <= 1 {
			continue
		}
		names = append(names, g.Name)
		if g.Qubits[0] > g.Qubits[1] {
			flags = append(flags, Reversed)
		} else {
			flags = append(flags, Forward)
		}
	}

	return names, flags
}

// Write renders names on the first line and flags on the second:
//
//	['a', 'b']
//	[1, 0]
//
// No trailing newline is written. Names are quoted the way Python's repr
// quotes a str, so the file matches what the Python tooling writes.
func Write(w io.Writer, names []string, flags []int) error {
	if len(names) != len(flags) {
		return fmt.Errorf("%w: %d names, %d flags", ErrLengthMismatch, len(names), len(flags))
	}

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = pyRepr(n)
	}
	digits := make([]string, len(flags))
	for i, f := range flags {
		digits[i] = strconv.Itoa(f)
	}

	_, err := fmt.Fprintf(w, "[%s]\n[%s]", strings.Join(quoted, ", "), strings.Join(digits, ", "))
	return err
}

// pyRepr quotes s like Python's repr(str): single quotes unless s holds a
// single quote and no double quote. Backslashes, the chosen quote and
// non-printable runes are escaped.
func pyRepr(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case strconv.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte(quote)

	return b.String()
}

// Extractor fetches a device through a Provider and extracts its gate directions.
type Extractor struct {
	provider provider.Provider
	device   string
	savePath string
	logger   *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSaveToFile persists every extraction to path, or to DefaultFileName
// when path is empty. An existing file is overwritten.
func WithSaveToFile(path string) Option {
	if path == "" {
		path = DefaultFileName
	}
	return func(e *Extractor) {
		e.savePath = path
	}
}

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("direction: WithLogger(nil)")
	}
	return func(e *Extractor) {
		e.logger = l
	}
}

// NewExtractor binds an extractor to device on p.
func NewExtractor(p provider.Provider, device string, opts ...Option) *Extractor {
	e := &Extractor{provider: p, device: device, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract fetches the device snapshot and returns gate names and flags.
// Provider errors are returned unchanged; persistence errors are wrapped.
// Nothing is returned alongside an error.
func (e *Extractor) Extract(ctx context.Context) ([]string, []int, error) {
	dev, err := e.provider.Fetch(ctx, e.device)
	if err != nil {
		return nil, nil, err
	}

	names, flags := Extract(dev.Gates)
	e.logger.Debug("gate directions extracted",
		zap.String("device", e.device),
		zap.Int("gates", len(dev.Gates)),
		zap.Int("multi_qubit", len(names)),
	)

	if e.savePath != "" {
		if err := e.save(names, flags); err != nil {
			return nil, nil, err
		}
	}

	return names, flags, nil
}

func (e *Extractor) save(names []string, flags []int) (err error) {
	f, err := os.Create(e.savePath)
	if err != nil {
		return fmt.Errorf("direction: save %s: %w", e.savePath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("direction: close %s: %w", e.savePath, cerr)
		}
	}()

	if err := Write(f, names, flags); err != nil {
		return fmt.Errorf("direction: write %s: %w", e.savePath, err)
	}
	e.logger.Info("gate directions saved", zap.String("path", e.savePath))

	return nil
}

// SPDX-License-Identifier: MIT
// Package: qroute/provider
//
// config.go - credential and snapshot-directory settings.

package provider

import (
	"os"

	"github.com/go-playground/validator/v10"
)

// TokenEnv is consulted when Config.Token is empty.
const TokenEnv = "QROUTE_TOKEN"

// validate is shared; validator caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// Config holds provider credentials and the snapshot location.
type Config struct {
	// Token authorizes access to devices that require one. Empty means
	// "use the default credential", i.e. $QROUTE_TOKEN.
	Token string `yaml:"token"`

	// SnapshotDir is the directory FileProvider reads from.
	SnapshotDir string `yaml:"snapshot_dir" validate:"required"`
}

// ResolvedToken returns the explicit token, or the environment default.
func (c Config) ResolvedToken() string {
	if c.Token != "" {
		return c.Token
	}

	return os.Getenv(TokenEnv)
}

// Validate checks the struct tags of c.
func (c Config) Validate() error {
	return validate.Struct(c)
}

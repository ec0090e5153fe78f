// Package cache provides layout and artifact caching for flowsketch.
//
// Layout computation is cheap, but the server also caches emitted artifacts
// (DI XML, preview SVGs) and decoded processes so that repeat requests for
// the same diagram are served without recomputation. Three backends are
// provided:
//
//   - FileCache: directory-backed, for the CLI
//   - RedisCache: shared cache for multi-instance server deployments
//   - NullCache: caching disabled, for tests
//
// Keys are derived from content hashes via a [Keyer], so identical inputs
// share entries regardless of where they came from.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind. Processes and layouts are cheap to
// recompute; artifacts (rendered previews) are the expensive ones.
const (
	TTLProcess  = 24 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface all cache backends implement.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts distinguishes layout cache entries computed with different
// engine configurations.
type LayoutKeyOpts struct {
	ConfigHash string `json:"config_hash,omitempty"`
}

// ArtifactKeyOpts distinguishes artifact cache entries by output format.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer generates cache keys for the different entry kinds.
type Keyer interface {
	// ProcessKey generates a key for a decoded process, from a hash of
	// its JSON representation.
	ProcessKey(processHash string) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(processHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for an emitted artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a type prefix plus a SHA-256
// over the identifying inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ProcessKey generates a key for a decoded process.
func (k *DefaultKeyer) ProcessKey(processHash string) string {
	return hashKey("process", processHash)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(processHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", processHash, opts)
}

// ArtifactKey generates a key for an emitted artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g.
// separating cache entries per deployment or per tenant.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ProcessKey generates a prefixed process key.
func (k *ScopedKeyer) ProcessKey(processHash string) string {
	return k.prefix + k.inner.ProcessKey(processHash)
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(processHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(processHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

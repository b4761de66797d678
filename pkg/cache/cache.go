package cache

import (
	"context"
	"time"
)

// Default TTLs for the three cached artifact kinds.
const (
	SpecTTL     = 24 * time.Hour
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with TTL support.
// Implementations: FileCache for CLI usage, RedisCache for the server,
// NullCache to disable caching.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts captures every input that changes a computed layout.
type LayoutKeyOpts struct {
	Mode          string  `json:"mode"`
	Padding       float64 `json:"padding"`
	MaxIterations int     `json:"max_iterations"`
	Resolution    int     `json:"resolution"`
	RelLabelSize  float64 `json:"rel_label_size"`
	Speed         float64 `json:"speed"`
	ExpandLo      float64 `json:"expand_lo"`
	ExpandHi      float64 `json:"expand_hi"`
}

// ArtifactKeyOpts captures every input that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// SpecKey generates a key for a parsed spec document.
	SpecKey(format string, specHash string) string
	// LayoutKey generates a key for a computed layout.
	LayoutKey(specHash string, opts LayoutKeyOpts) string
	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates content-addressed keys with stage prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SpecKey generates a key for a parsed spec document.
func (k *DefaultKeyer) SpecKey(format string, specHash string) string {
	return "spec:" + format + ":" + specHash
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(specHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", specHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

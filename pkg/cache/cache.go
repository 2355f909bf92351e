// Package cache implements the two-tier classification cache: a process-local
// LRU fast tier consulted first, backed by a shared durable tier with a fixed
// retention window. Durable-tier failures degrade silently to cache misses;
// the cache never fails its caller.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/linnaea/pathclass/pkg/lifecycle"
)

// Classification is the cached outcome for one pathway name.
type Classification struct {
	Class    string `json:"class"`
	Subclass string `json:"subclass"`
}

// Valid reports whether both fields carry a usable, non-sentinel value.
// Sentinel or empty classifications are never cached.
func (c Classification) Valid() bool {
	return c.Class != "" && c.Class != "Unknown" &&
		c.Subclass != "" && c.Subclass != "Unknown"
}

// System defines the public contract for classification cache operations.
// Lookups that cannot be served resolve to absent rather than raising.
type System interface {
	Get(ctx context.Context, name string) (Classification, bool)
	GetMany(ctx context.Context, names []string) map[string]Classification
	Set(ctx context.Context, name string, c Classification)
	SetMany(ctx context.Context, entries map[string]Classification)
	ClearFastTier()
	Start(lc *lifecycle.Coordinator) error
}

type twoTier struct {
	fast    *lru.Cache[string, Classification]
	durable DurableTier
	ttl     time.Duration
	prefix  string
	logger  *slog.Logger
}

// New creates a two-tier cache. durable may be nil, in which case only the
// fast tier operates (the degraded mode when the backend is unreachable).
func New(cfg *Config, durable DurableTier, logger *slog.Logger) (System, error) {
	fast, err := lru.New[string, Classification](cfg.FastSize)
	if err != nil {
		return nil, err
	}

	return &twoTier{
		fast:    fast,
		durable: durable,
		ttl:     cfg.TTLDuration(),
		prefix:  cfg.Namespace + ":",
		logger:  logger.With("system", "cache"),
	}, nil
}

// Start registers durable tier shutdown with the lifecycle coordinator.
func (c *twoTier) Start(lc *lifecycle.Coordinator) error {
	if c.durable == nil {
		return nil
	}
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := c.durable.Close(); err != nil {
			c.logger.Error("durable tier close failed", "error", err)
		}
	})
	return nil
}

// Get returns the cached classification for name, consulting the fast tier
// first. A durable hit is promoted into the fast tier.
func (c *twoTier) Get(ctx context.Context, name string) (Classification, bool) {
	key := c.key(name)

	if hit, ok := c.fast.Get(key); ok {
		return hit, true
	}
	if c.durable == nil {
		return Classification{}, false
	}

	raw, ok, err := c.durable.Get(ctx, key)
	if err != nil {
		c.logger.Debug("durable get degraded to miss", "error", err)
		return Classification{}, false
	}
	if !ok {
		return Classification{}, false
	}

	entry, err := decode(raw)
	if err != nil {
		c.logger.Debug("durable entry undecodable", "key", key, "error", err)
		return Classification{}, false
	}

	c.fast.Add(key, entry)
	return entry, true
}

// GetMany resolves a set of names in one pass: fast-tier hits first, then a
// single MGET for the remainder. Unavailable entries resolve to absent.
func (c *twoTier) GetMany(ctx context.Context, names []string) map[string]Classification {
	found := make(map[string]Classification, len(names))

	var missNames []string
	var missKeys []string
	for _, name := range names {
		key := c.key(name)
		if hit, ok := c.fast.Get(key); ok {
			found[name] = hit
			continue
		}
		missNames = append(missNames, name)
		missKeys = append(missKeys, key)
	}

	if c.durable == nil || len(missKeys) == 0 {
		return found
	}

	values, err := c.durable.MGet(ctx, missKeys)
	if err != nil {
		c.logger.Debug("durable mget degraded to miss", "count", len(missKeys), "error", err)
		return found
	}

	for i, raw := range values {
		if raw == nil {
			continue
		}
		entry, err := decode(*raw)
		if err != nil {
			c.logger.Debug("durable entry undecodable", "key", missKeys[i], "error", err)
			continue
		}
		c.fast.Add(missKeys[i], entry)
		found[missNames[i]] = entry
	}

	return found
}

// Set upserts one classification into both tiers. Sentinel or incomplete
// values are dropped; the cache only ever holds resolved entries.
func (c *twoTier) Set(ctx context.Context, name string, entry Classification) {
	if !entry.Valid() {
		return
	}

	key := c.key(name)
	c.fast.Add(key, entry)

	if c.durable == nil {
		return
	}
	if err := c.durable.Set(ctx, key, encode(entry), c.ttl); err != nil {
		c.logger.Debug("durable set dropped", "key", key, "error", err)
	}
}

// SetMany upserts a batch of classifications.
func (c *twoTier) SetMany(ctx context.Context, entries map[string]Classification) {
	for name, entry := range entries {
		c.Set(ctx, name, entry)
	}
}

// ClearFastTier drops every in-process entry. The durable tier is untouched;
// its entries remain the baseline for subsequent reads.
func (c *twoTier) ClearFastTier() {
	c.fast.Purge()
}

// key derives the cache key from the exact trimmed pathway name. Names that
// differ only by case or interior whitespace remain distinct keys.
func (c *twoTier) key(name string) string {
	return c.prefix + url.PathEscape(strings.TrimSpace(name))
}

func encode(entry Classification) string {
	raw, _ := json.Marshal(entry)
	return string(raw)
}

func decode(raw string) (Classification, error) {
	var entry Classification
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return Classification{}, err
	}
	return entry, nil
}

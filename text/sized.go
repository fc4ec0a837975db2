package text

import "sync/atomic"

// sizedKey identifies a Face by value: same source, size and hints
// always map to the same Face.
type sizedKey struct {
	source *FontSource
	size   float64
	hints  Hints
}

// SizedCache derives Faces from FontSources and keeps them, keyed by
// (source, size, hints). It never resolves fonts itself, so changing only
// the size never repeats font lookup.
//
// Faces handed out by a SizedCache are shared between callers of Derive
// and are not safe for concurrent use.
type SizedCache struct {
	cache       *Cache[sizedKey, *Face]
	hints       Hints
	derivations atomic.Int64
}

// NewSizedCache creates a cache holding up to about limit faces
// (0 means unlimited) built with the given hints.
func NewSizedCache(limit int, hints Hints) *SizedCache {
	return &SizedCache{
		cache: NewCache[sizedKey, *Face](limit),
		hints: hints.normalized(),
	}
}

// Derive returns src at the given point size.
// It returns ErrNoSource when src is nil.
func (c *SizedCache) Derive(src *FontSource, size float64) (*Face, error) {
	if src == nil {
		return nil, ErrNoSource
	}

	key := sizedKey{source: src, size: size, hints: c.hints}
	return c.cache.GetOrCreate(key, func() (*Face, error) {
		face, err := src.Face(size, c.hints)
		if err != nil {
			return nil, err
		}
		c.derivations.Add(1)
		Logger().Debug("text: derived face",
			"family", src.Family(), "size", size, "dpi", c.hints.DPI)
		return face, nil
	})
}

// Hints returns the hints every derived face uses.
func (c *SizedCache) Hints() Hints {
	return c.hints
}

// Derivations returns how many faces were created, i.e. cache misses
// that succeeded.
func (c *SizedCache) Derivations() int64 {
	return c.derivations.Load()
}

// Stats reports cache hits and misses. Misses include derivations
// that failed.
func (c *SizedCache) Stats() CacheStats {
	return c.cache.Stats()
}

// Len returns the number of cached faces.
func (c *SizedCache) Len() int {
	return c.cache.Len()
}

// Clear drops every cached face.
func (c *SizedCache) Clear() {
	c.cache.Clear()
}

package text

import (
	"errors"
	"fmt"
)

// Strategy is one way of turning a font name into a FontSource.
//
// Attempt returns ErrNoMatch (possibly wrapped) when the strategy has
// nothing for the name, so that the next strategy is tried. Any other
// error stops resolution and is reported to the caller.
type Strategy interface {
	Name() string
	Attempt(name string) (*FontSource, error)
}

// Resolver locates fonts by name using an ordered list of strategies.
// The first strategy that succeeds wins. Successful results are
// memoized per name: resolving the same name again never re-runs the
// strategies. Failures are not memoized.
//
// Resolver is not safe for concurrent use.
type Resolver struct {
	strategies []Strategy
	sources    *Cache[string, *FontSource]
	lookups    int
}

// NewResolver creates a resolver trying strategies in the given order.
func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
		sources:    NewCache[string, *FontSource](0),
	}
}

// Resolve returns the FontSource for name.
// It returns a *FontNotFoundError when no strategy matched.
func (r *Resolver) Resolve(name string) (*FontSource, error) {
	if src, ok := r.sources.Get(name); ok {
		return src, nil
	}

	r.lookups++
	log := Logger()
	for _, s := range r.strategies {
		src, err := s.Attempt(name)
		if errors.Is(err, ErrNoMatch) || (err == nil && src == nil) {
			log.Debug("text: strategy missed", "font", name, "strategy", s.Name())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("text: %s lookup of %q: %w", s.Name(), name, err)
		}

		r.sources.Set(name, src)
		log.Info("text: font resolved",
			"font", name,
			"strategy", s.Name(),
			"location", src.Origin().Location,
			"family", src.Family())
		return src, nil
	}

	return nil, &FontNotFoundError{Name: name}
}

// Lookups returns how many times the strategy chain has run, which is
// the number of Resolve calls that missed the memo.
func (r *Resolver) Lookups() int {
	return r.lookups
}

// Len returns the number of memoized fonts.
func (r *Resolver) Len() int {
	return r.sources.Len()
}

// Stats reports memo hits and misses.
func (r *Resolver) Stats() CacheStats {
	return r.sources.Stats()
}

// Strategies returns the strategies in the order they are tried.
func (r *Resolver) Strategies() []Strategy {
	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)
	return out
}

package measure

import (
	"github.com/npillmayer/typewriter/core/cache"
	"github.com/npillmayer/typewriter/core/dimen"
)

// CacheMeasurer memoizes the measurements of another measurer, keyed by the
// exact text. Replacing a measurer by its cached variant never changes a
// measurement, only the number of calls to the ruler.
type CacheMeasurer struct {
	measurer TextMeasurer
	cache    *cache.Cache[string, dimen.Dimensions]
}

// NewCached wraps a measurer with a cache.
func NewCached(m TextMeasurer) *CacheMeasurer {
	if m == nil {
		panic("cannot cache a nil measurer")
	}
	return &CacheMeasurer{
		measurer: m,
		cache:    cache.New(m.Measure),
	}
}

// NewCacheMeasurer creates a caching character measurer for a ruler:
// whole texts as well as single characters are measured only once.
func NewCacheMeasurer(ruler Ruler, opts ...Option) *CacheMeasurer {
	return NewCached(NewCacheCharacterMeasurer(ruler, opts...))
}

// Measure returns the dimensions of text, consulting the cache first.
func (cm *CacheMeasurer) Measure(text string) dimen.Dimensions {
	return cm.cache.Get(text)
}

// Reset invalidates all cached measurements, including those of the
// wrapped measurer. Hosts call Reset whenever the style context changes.
func (cm *CacheMeasurer) Reset() {
	tracer().Debugf("dropping %d cached measurements", cm.cache.Len())
	cm.cache.Reset()
	if r, ok := cm.measurer.(Resetter); ok {
		r.Reset()
	}
}

// Unwrap returns the measurer wrapped by the cache.
func (cm *CacheMeasurer) Unwrap() TextMeasurer {
	return cm.measurer
}

var _ TextMeasurer = &CacheMeasurer{}
var _ Resetter = &CacheMeasurer{}

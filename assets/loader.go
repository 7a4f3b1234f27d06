package assets

import (
	"log"
	"time"
)

// DurationLoader resolves asset lengths from a catalog on a background
// goroutine after a fixed latency, the way a streamed asset would arrive.
type DurationLoader struct {
	catalog *Catalog
	latency time.Duration
}

func NewDurationLoader(c *Catalog, latency time.Duration) *DurationLoader {
	return &DurationLoader{catalog: c, latency: latency}
}

// LoadDurationAsync calls done from another goroutine once the asset is
// "loaded". Unknown assets are logged and never complete.
func (l *DurationLoader) LoadDurationAsync(assetID string, done func(seconds float64)) {
	go func() {
		if l.latency > 0 {
			time.Sleep(l.latency)
		}
		seconds, ok := l.catalog.Length(assetID)
		if !ok {
			log.Printf("Warning: asset %s not in catalog", assetID)
			return
		}
		done(seconds)
	}()
}

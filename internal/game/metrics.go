package game

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	Side       Color         `json:"side"`
	Difficulty Difficulty    `json:"difficulty"`
	Depth      int           `json:"depth"`
	Candidates int           `json:"candidates"`
	Nodes      int64         `json:"nodes"`
	Duration   time.Duration `json:"duration"`
}

// Collector receives the metrics of every completed BestMove call.
type Collector interface {
	Record(SearchMetrics)
}

// CountingCollector keeps running totals and the last record.
type CountingCollector struct {
	searches atomic.Int64
	nodes    atomic.Int64
	last     atomic.Pointer[SearchMetrics]
}

func NewCountingCollector() *CountingCollector {
	return &CountingCollector{}
}

func (c *CountingCollector) Record(m SearchMetrics) {
	c.searches.Add(1)
	c.nodes.Add(m.Nodes)
	c.last.Store(&m)
}

func (c *CountingCollector) Searches() int64 { return c.searches.Load() }
func (c *CountingCollector) Nodes() int64    { return c.nodes.Load() }

func (c *CountingCollector) Last() (SearchMetrics, bool) {
	m := c.last.Load()
	if m == nil {
		return SearchMetrics{}, false
	}
	return *m, true
}

type noCollector struct{}

func (noCollector) Record(SearchMetrics) {}

package util

import "time"

const metricsWindow = 256

// MetricsGetter allows access to tracked durations.
type MetricsGetter interface {
	Avg() time.Duration
	Last() time.Duration
}

// MetricsHandler tracks durations (e.g. of renders) in a fixed window and
// provides the last one and the average over the window.
// The zero value is ready to use.
type MetricsHandler struct {
	values [metricsWindow]time.Duration
	next   int
	count  int
}

// Add adds a duration, dropping the oldest one once the window is full.
func (h *MetricsHandler) Add(d time.Duration) {
	h.values[h.next] = d
	h.next = (h.next + 1) % metricsWindow
	h.count = min(h.count+1, metricsWindow)
}

// Track runs f and adds its duration.
func (h *MetricsHandler) Track(f func()) {
	start := time.Now()
	f()
	h.Add(time.Since(start))
}

// Last returns the most recently added duration, zero if none was added.
func (h *MetricsHandler) Last() time.Duration {
	if h.count == 0 {
		return 0
	}
	return h.values[(h.next+metricsWindow-1)%metricsWindow]
}

// Avg returns the average of the window, zero if nothing was added.
func (h *MetricsHandler) Avg() time.Duration {
	if h.count == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range h.values[:h.count] {
		sum += v
	}
	return sum / time.Duration(h.count)
}

// Package metric counts how the menu is used. The counters are exported on
// the HTTP adapter's /metrics endpoint.
package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rightclick"

// Recorder counts submenu expansions and clicks by item title. It satisfies
// dispatcher.Observer.
type Recorder struct {
	registry   *prometheus.Registry
	expansions IncrementalCounter
	clicks     IncrementalCounter
}

// NewRecorder builds a recorder on its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	return &Recorder{
		registry:   reg,
		expansions: NewCounterWithRegistry(reg, "expansions_total", "Submenus opened, by title.", "title"),
		clicks:     NewCounterWithRegistry(reg, "clicks_total", "Items clicked, by title and whether the game state changed.", "title", "changed"),
	}
}

// Registry is the gatherer behind the recorder's counters.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Expanded(title string) {
	r.expansions.Increment(title)
}

func (r *Recorder) Clicked(title string, changed bool) {
	r.clicks.Increment(title, strconv.FormatBool(changed))
}

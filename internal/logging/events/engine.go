package events

import "github.com/atomicstack/rightclick/internal/logging"

// EngineTracer records the two calls adapters make into the menu tree.
type EngineTracer struct{}

var Engine = EngineTracer{}

func (EngineTracer) Expand(path, title string, children int) {
	logging.Trace("engine.expand", map[string]interface{}{"path": path, "title": title, "children": children})
}

func (EngineTracer) Click(path, title string, before, after interface{}) {
	logging.Trace("engine.click", map[string]interface{}{"path": path, "title": title, "before": before, "after": after})
}

func (EngineTracer) Open(url, mode string) {
	logging.Trace("engine.open", map[string]interface{}{"url": url, "mode": mode})
}

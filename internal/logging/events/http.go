package events

import (
	"time"

	"github.com/atomicstack/rightclick/internal/logging"
)

type HTTPTracer struct{}

var HTTP = HTTPTracer{}

func (HTTPTracer) Listen(addr string) {
	logging.Trace("http.listen", map[string]interface{}{"addr": addr})
}

func (HTTPTracer) Request(method, path string, status int, elapsed time.Duration) {
	logging.Trace("http.request", map[string]interface{}{
		"method":  method,
		"path":    path,
		"status":  status,
		"elapsed": elapsed.String(),
	})
}

func (HTTPTracer) Shutdown(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("http.shutdown", payload)
}

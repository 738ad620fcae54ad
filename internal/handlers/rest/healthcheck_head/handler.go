package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает 503 как только начался graceful shutdown,
// чтобы балансировщик перестал слать новые запросы.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{isShuttingDown: isShuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	status := http.StatusNoContent
	if h.isShuttingDown.Load() {
		status = http.StatusServiceUnavailable
	}
	w.WriteHeader(status)
}

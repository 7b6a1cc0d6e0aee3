package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var heartbeatInterval = 15 * time.Second

// streamEvents pushes the session's game events as server-sent events until
// the client disconnects.
func (that *Server) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "streamEvents")
	gameID := that.sessionID(w, r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, unsubscribe := that.events.Subscribe(gameID)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case evt := <-events:
			data, err := json.Marshal(evt)
			if err != nil {
				log.Error("failed to marshal event", "error", err)
				continue
			}

			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Kind, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

package events

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/GregMSThompson/dashboard-layout/pkg/logger"
)

// SSEHandler streams broker events as server-sent events. Clients may filter by
// event name with ?events=name1,name2.
func SSEHandler(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming not supported", http.StatusInternalServerError)
			return
		}

		var filter map[string]bool
		if q := r.URL.Query().Get("events"); q != "" {
			filter = make(map[string]bool)
			for _, name := range strings.Split(q, ",") {
				if name = strings.TrimSpace(name); name != "" {
					filter[name] = true
				}
			}
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		flusher.Flush()

		id, ch := broker.Subscribe()
		defer broker.Unsubscribe(id)
		log.Info("event stream opened", "subscriber", id)

		for {
			select {
			case <-r.Context().Done():
				log.Info("event stream closed", "subscriber", id)
				return
			case evt, ok := <-ch:
				if !ok {
					return
				}
				if filter != nil && !filter[evt.Name] {
					continue
				}
				fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", evt.ID, evt.Name, evt.Payload)
				flusher.Flush()
			}
		}
	}
}

package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	meridian "github.com/meridianpay/meridian-go"
)

// Resolver turns the retrieve URL of an event into a fetched resource.
// *meridian.Client satisfies it.
type Resolver interface {
	FetchResourceByURL(ctx context.Context, url string) (meridian.Resource, error)
}

// EventFunc handles one resolved event. The resource is nil when the
// retrieve URL could not be mapped to a known resource kind.
type EventFunc func(ctx context.Context, event *Event, resource meridian.Resource) error

// Handler is an http.Handler for the gateway's webhook deliveries. It
// parses the event, resolves the referenced resource through the client
// and hands both to the registered callback.
type Handler struct {
	resolver Resolver
	onEvent  EventFunc
	log      *zap.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

func WithLogger(log *zap.Logger) HandlerOption {
	return func(h *Handler) { h.log = log }
}

// NewHandler returns a webhook handler dispatching to onEvent.
func NewHandler(resolver Resolver, onEvent EventFunc, opts ...HandlerOption) *Handler {
	h := &Handler{
		resolver: resolver,
		onEvent:  onEvent,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "unreadable body", http.StatusBadRequest)
		return
	}

	event, err := ParseEvent(body)
	if err != nil {
		h.log.Warn("discarding malformed webhook payload", zap.Error(err))
		http.Error(w, "malformed payload", http.StatusBadRequest)
		return
	}

	var resource meridian.Resource
	if event.RetrieveURL != "" {
		resource, err = h.resolver.FetchResourceByURL(r.Context(), event.RetrieveURL)
		if err != nil {
			h.log.Error("resolving webhook resource failed",
				zap.String("event", event.Event),
				zap.String("retrieveUrl", event.RetrieveURL),
				zap.Error(err))
			http.Error(w, "resource resolution failed", http.StatusBadGateway)
			return
		}
	}

	if err := h.onEvent(r.Context(), event, resource); err != nil {
		h.log.Error("webhook callback failed", zap.String("event", event.Event), zap.Error(err))
		http.Error(w, "event not processed", http.StatusInternalServerError)
		return
	}

	h.log.Debug("webhook processed", zap.String("event", event.Event))
	w.WriteHeader(http.StatusOK)
}

// NewRouter mounts the handler on the conventional webhook path.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/webhooks/meridian", h).Methods(http.MethodPost)
	return r
}

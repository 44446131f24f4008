package tracking

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/QuangTung97/reva-click/pkg/otellib"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 64 * 1024

// Handler serves the tracking HTTP API
type Handler struct {
	service IService
}

// NewRouter returns the chi router with every tracking route mounted.
// Forwarding headers are honored only for requests coming from proxies.
func NewRouter(
	service IService, tp trace.TracerProvider, logger *zap.Logger, proxies []*net.IPNet,
) *chi.Mux {
	h := &Handler{service: service}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(realIP(proxies))
	r.Use(middleware.Recoverer)
	r.Use(otellib.HTTPMiddleware(tp, logger))
	r.Use(logRequests)

	r.Get("/healthz", h.healthz)
	r.Get("/r/{code}", h.visit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/clicks/verify", h.verify)
		r.Post("/links", h.createLink)
	})
	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		otellib.Extract(r.Context()).Info("http request",
			zap.String("http.method", r.Method),
			zap.String("http.path", r.URL.Path),
			zap.Int("http.status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func httpStatusOf(err error) int {
	switch {
	case errors.Is(err, ErrLinkNotFound), errors.Is(err, ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCampaignInactive):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) visit(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.Visit(r.Context(), VisitInput{
		Code:      chi.URLParam(r, "code"),
		SourceIP:  remoteHost(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		status := httpStatusOf(err)
		if status >= http.StatusInternalServerError {
			otellib.Extract(r.Context()).Error("visit", zap.Error(err))
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, output.DestinationURL, http.StatusFound)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result := h.service.Verify(r.Context(), req.toInput())
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) createLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	link, err := h.service.CreateLink(r.Context(), req.CampaignID, req.PromoterID)
	if err != nil {
		status := httpStatusOf(err)
		if status >= http.StatusInternalServerError {
			otellib.Extract(r.Context()).Error("create link", zap.Error(err))
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, newCreateLinkResponse(link))
}

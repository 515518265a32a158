package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cssel/pkg/selector"
	"github.com/matzehuels/cssel/pkg/transcode"
)

// buildRequest is the payload for POST /v1/selectors.
// Fragments are kind=value specs applied in order, same as the build command.
type buildRequest struct {
	Fragments []string `json:"fragments"`
}

// combineRequest is the payload for POST /v1/combine.
type combineRequest struct {
	Left       []string `json:"left"`
	Combinator string   `json:"combinator"`
	Right      []string `json:"right"`
}

// buildResponse is returned by both build endpoints.
// ID is a per-request UUID so clients can correlate logs.
type buildResponse struct {
	ID       string `json:"id"`
	Selector string `json:"selector"`
}

// errorResponse carries a failure message.
type errorResponse struct {
	Error string `json:"error"`
}

// serveCommand creates the serve command exposing the builder over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the selector builder as a small HTTP API",
		Long: `Start an HTTP server exposing the selector builder.

Endpoints:
  POST /v1/selectors  {"fragments": ["element=a", "id=main"]}
  POST /v1/combine    {"left": [...], "combinator": "+", "right": [...]}
  GET  /healthz

Validation failures return 422 with the builder's error message.`,
		Example: `  cssel serve --addr :8080
  curl -d '{"fragments":["element=div","id=main"]}' localhost:8080/v1/selectors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := &http.Server{
				Addr:              addr,
				Handler:           c.newRouter(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				c.Logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// newRouter builds the chi router with request logging attached.
func (c *CLI) newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(c.requestLogger)

	r.Get("/healthz", handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/selectors", handleBuild)
		r.Post("/combine", handleCombine)
	})

	return r
}

// requestLogger tags each request with a UUID, attaches a scoped logger
// to the context, and logs method, path and duration on completion.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		logger := c.Logger.With("request_id", id)
		start := time.Now()

		next.ServeHTTP(w, req.WithContext(withRequestID(withLogger(req.Context(), logger), id)))

		logger.Debug("request", "method", req.Method, "path", req.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// requestIDKey is the context key for the per-request UUID.
const requestIDKey ctxKey = 1

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleBuild(w http.ResponseWriter, req *http.Request) {
	body, err := transcode.Read[buildRequest](req.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	sel, err := parseFragments(body.Fragments)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeSelector(w, req, sel)
}

func handleCombine(w http.ResponseWriter, req *http.Request) {
	body, err := transcode.Read[combineRequest](req.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	left, err := parseFragments(body.Left)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	right, err := parseFragments(body.Right)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeSelector(w, req, selector.Combine(left, body.Combinator, right))
}

// writeSelector renders the chain and writes the response. Ordering and
// cardinality violations map to 422 since the request was well-formed
// but the fragment sequence is invalid.
func writeSelector(w http.ResponseWriter, req *http.Request, sel selector.Selector) {
	text, err := sel.Stringify()
	if err != nil {
		loggerFromContext(req.Context()).Debug("invalid fragment sequence", "err", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, buildResponse{ID: requestIDFromContext(req.Context()), Selector: text})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = transcode.Write(v, w)
}

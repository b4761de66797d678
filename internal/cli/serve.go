package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/annotick/annotick/pkg/cache"
	"github.com/annotick/annotick/pkg/errors"
	"github.com/annotick/annotick/pkg/layout"
	"github.com/annotick/annotick/pkg/observability"
	"github.com/annotick/annotick/pkg/pipeline"
)

const (
	serverReadTimeout     = 15 * time.Second
	serverWriteTimeout    = 60 * time.Second
	serverShutdownTimeout = 5 * time.Second
	maxRequestBody        = 1 << 20
)

// serveCommand creates the serve command: an HTTP server exposing the
// pipeline as /layout and /render endpoints.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the annotation HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.serverCache(cmd.Context(), redisAddr, noCache)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(store, nil, c.Logger)
			defer runner.Close()

			srv := &http.Server{
				Addr:         addr,
				Handler:      c.routes(runner),
				ReadTimeout:  serverReadTimeout,
				WriteTimeout: serverWriteTimeout,
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
				ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for shared caching (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable caching")
	return cmd
}

// serverCache picks the cache backend for the server. Redis wins when
// configured so multiple instances can share results.
func (c *CLI) serverCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr)
	}
	return newCache(false)
}

func (c *CLI) routes(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.observe)

	r.Get("/healthz", handleHealth)
	r.Post("/layout", handleLayout(runner))
	r.Post("/render", handleRender(runner))
	return r
}

// observe attaches the logger to the request context and reports the
// request to the registered HTTP hooks.
func (c *CLI) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ctx := withLogger(req.Context(), c.Logger)
		observability.HTTP().OnRequest(ctx, req.Method, req.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req.WithContext(ctx))

		observability.HTTP().OnResponse(ctx, req.Method, req.URL.Path, ww.Status(), time.Since(start))
		c.Logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLayout computes and returns the layout for a posted spec without
// rendering any artifacts.
func handleLayout(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, ok := decodeOptions(w, r)
		if !ok {
			return
		}

		doc, raw, _, err := runner.LoadWithCacheInfo(r.Context(), opts)
		if err != nil {
			writeError(w, r, err)
			return
		}
		l, _, err := runner.ComputeLayoutWithCacheInfo(r.Context(), doc, cache.Hash(raw), opts)
		if err != nil {
			writeError(w, r, err)
			return
		}

		data, err := layout.MarshalLayout(l)
		if err != nil {
			writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// handleRender runs the full pipeline and returns the first requested
// format as the response body.
func handleRender(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, ok := decodeOptions(w, r)
		if !ok {
			return
		}

		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			writeError(w, r, err)
			return
		}

		format := opts.Formats[0]
		w.Header().Set("Content-Type", contentType(format))
		w.Header().Set("X-Run-Id", result.RunID)
		w.WriteHeader(http.StatusOK)
		w.Write(result.Artifacts[format])
	}
}

// decodeOptions parses the pipeline options from the request body and
// validates them. A false return means the error response was already sent.
func decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, bool) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "INVALID_REQUEST", fmt.Sprintf("decode request: %v", err))
		return opts, false
	}

	// The server only accepts inline spec data; file paths would leak the
	// server's filesystem to clients.
	if len(opts.SpecData) == 0 {
		writeErrorStatus(w, http.StatusBadRequest, "INVALID_REQUEST", "spec_data is required")
		return opts, false
	}
	opts.SpecPath = ""

	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return opts, false
	}
	return opts, true
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatPDF:
		return "application/pdf"
	default:
		return "application/json"
	}
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidAxis, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidSpec:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeLabelNotFound:
		status = http.StatusNotFound
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeErrorStatus(w, status, string(code), errors.UserMessage(err))
}

func writeErrorStatus(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

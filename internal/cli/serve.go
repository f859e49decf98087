package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/toda-lab/simpgraph/pkg/render"
)

// newServeCmd creates the serve command, a browser preview for graph files.
// Every request re-reads and re-renders the file, so edits show up on
// refresh without restarting the server.
func newServeCmd() *cobra.Command {
	var (
		addr      string
		name      string
		attrsList []string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Preview a graph in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flagAttrs, err := parseAttrs(attrsList)
			if err != nil {
				return err
			}
			if name == "" {
				name = cfg.Render.Name
			}
			opts := render.Options{
				Name:       name,
				GraphAttrs: mergeAttrs(cfg.Render.Attrs, flagAttrs),
			}
			return runServe(cmd.Context(), args[0], addr, opts, strict)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8458", "listen address")
	cmd.Flags().StringVar(&name, "name", "", "DOT graph identifier")
	cmd.Flags().StringArrayVar(&attrsList, "graph-attr", nil, "graph-level Graphviz attribute key=value (repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject identifiers exceeding the declared header maximum")

	return cmd
}

const previewPage = `<!DOCTYPE html>
<html>
<head><title>simpgraph preview</title></head>
<body style="margin:0;display:grid;place-items:center;min-height:100vh">
<img src="/graph.svg" alt="graph">
</body>
</html>
`

func runServe(ctx context.Context, input, addr string, opts render.Options, strict bool) error {
	logger := loggerFromContext(ctx)

	// Render once up front so bad input fails before the server starts.
	if _, err := renderPreview(ctx, input, opts, strict); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, previewPage)
	})
	r.Get("/graph.svg", func(w http.ResponseWriter, req *http.Request) {
		svg, err := renderPreview(req.Context(), input, opts, strict)
		if err != nil {
			logger.Error("render failed", "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(svg)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	printInfo("Serving %s at http://%s (refresh after editing the file)", input, addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	}
}

// renderPreview reads the file and renders it to SVG.
func renderPreview(ctx context.Context, input string, opts render.Options, strict bool) ([]byte, error) {
	g, err := readGraphFile(input, strict)
	if err != nil {
		return nil, err
	}
	return render.SVG(ctx, render.ToDOT(g, opts))
}

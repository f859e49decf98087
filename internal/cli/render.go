package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/toda-lab/simpgraph/pkg/cache"
	"github.com/toda-lab/simpgraph/pkg/dimacs"
	"github.com/toda-lab/simpgraph/pkg/graph"
	"github.com/toda-lab/simpgraph/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"

	// artifactTTL bounds how long cached renders are reused.
	artifactTTL = 7 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string            // output base path (default: input without extension)
	formats []string          // output formats: dot, svg, png
	name    string            // DOT graph identifier
	attrs   map[string]string // graph-level Graphviz attributes
	strict  bool              // strict DIMACS parsing
	noCache bool              // bypass the artifact cache
}

// newRenderCmd creates the render command for generating graph artifacts.
// SVG and PNG renders go through the artifact cache; DOT output is cheap
// enough to regenerate every time.
func newRenderCmd() *cobra.Command {
	var (
		formatsStr string
		attrsList  []string
	)
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph file to DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts.formats = parseFormats(formatsStr, cfg.Render.Formats)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			flagAttrs, err := parseAttrs(attrsList)
			if err != nil {
				return err
			}
			opts.attrs = mergeAttrs(cfg.Render.Attrs, flagAttrs)
			if opts.name == "" {
				opts.name = cfg.Render.Name
			}

			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: input file without extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().StringVar(&opts.name, "name", "", "DOT graph identifier")
	cmd.Flags().StringArrayVar(&attrsList, "graph-attr", nil, "graph-level Graphviz attribute key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject identifiers exceeding the declared header maximum")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	body, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	g, err := readGraphBody(body, opts.strict)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	dot := render.ToDOT(g, render.Options{Name: opts.name, GraphAttrs: opts.attrs})

	store, err := openCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	paths := make([]string, 0, len(opts.formats))
	for _, format := range opts.formats {
		data, err := renderFormat(ctx, store, body, dot, format, opts.attrs)
		if err != nil {
			spinner.Stop()
			return err
		}
		path := base + "." + format
		if err := render.WriteArtifact(path, data); err != nil {
			spinner.Stop()
			return err
		}
		paths = append(paths, path)
	}
	spinner.Stop()

	prog.done(fmt.Sprintf("Rendered %d vertices, %d edges", g.VertexCount(), g.EdgeCount()))
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// renderFormat produces one artifact, consulting the cache for engine-backed
// formats.
func renderFormat(ctx context.Context, store cache.Cache, body []byte, dot, format string, attrs map[string]string) ([]byte, error) {
	if format == formatDOT {
		return []byte(dot), nil
	}

	logger := loggerFromContext(ctx)
	key := cache.ArtifactKey(body, format, attrs)
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		logger.Debug("artifact cache hit", "format", format)
		return data, nil
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case formatSVG:
		data, err = render.SVG(ctx, dot)
	case formatPNG:
		data, err = render.PNG(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Set(ctx, key, data, artifactTTL); err != nil {
		logger.Debug("artifact cache write failed", "err", err)
	}
	return data, nil
}

// openCache returns the artifact cache, or a null cache when disabled.
func openCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	return cache.NewFileCache(dir)
}

// readGraphBody parses in-memory DIMACS text, optionally in strict mode.
func readGraphBody(body []byte, strict bool) (*graph.Graph, error) {
	var opts []dimacs.Option
	if strict {
		opts = append(opts, dimacs.Strict())
	}
	return dimacs.Read(bytes.NewReader(body), opts...)
}

// parseFormats resolves the --format flag against config defaults.
// With neither set, SVG is rendered.
func parseFormats(s string, configDefaults []string) []string {
	if s == "" {
		if len(configDefaults) > 0 {
			return configDefaults
		}
		return []string{formatSVG}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}

// validateFormats rejects unknown output formats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		switch f {
		case formatDOT, formatSVG, formatPNG:
		default:
			return fmt.Errorf("unsupported format %q (want dot, svg, or png)", f)
		}
	}
	return nil
}

// parseAttrs parses repeated --graph-attr key=value flags.
func parseAttrs(list []string) (map[string]string, error) {
	if len(list) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(list))
	for _, item := range list {
		k, v, ok := strings.Cut(item, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid graph attribute %q (want key=value)", item)
		}
		attrs[k] = v
	}
	return attrs, nil
}

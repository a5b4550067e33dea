package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/d2go/internal/api"
	"github.com/udisondev/d2go/internal/config"
	"github.com/udisondev/d2go/internal/session"
)

func runAnalyze(ctx context.Context, cfg config.Calculator, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	format := fs.String("o", cfg.Output, "output format: table or json")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing analyze flags: %w", err)
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("analyze: no request files given")
	}
	if *format != config.OutputTable && *format != config.OutputJSON {
		return fmt.Errorf("analyze: unknown output format %q", *format)
	}

	b, err := newBuilder(ctx, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := analyzeAll(ctx, b, cfg.Workers, paths)
	if err != nil {
		return err
	}
	slog.Info("analysis finished",
		"requests", len(results),
		"workers", cfg.Workers,
		"duration", time.Since(start).Round(time.Millisecond))

	if *format == config.OutputJSON {
		if len(results) == 1 {
			return api.WriteJSON(out, results[0])
		}
		return api.WriteJSON(out, results)
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		renderResponse(out, r)
	}
	return nil
}

// analyzeAll runs one session per request file, at most workers at a time.
// Results keep the order of paths.
func analyzeAll(ctx context.Context, b *session.Builder, workers int, paths []string) ([]api.Response, error) {
	results := make([]api.Response, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			resp, err := analyzeFile(gctx, b, path)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(results))
	for _, r := range results {
		if prev, dup := seen[r.Fingerprint]; dup {
			slog.Warn("duplicate scenario", "request", r.Name, "same_as", prev)
			continue
		}
		seen[r.Fingerprint] = r.Name
	}
	return results, nil
}

func analyzeFile(ctx context.Context, b *session.Builder, path string) (api.Response, error) {
	req, err := api.LoadRequest(path)
	if err != nil {
		return api.Response{}, err
	}

	s := session.New(b)
	if err := req.Apply(s); err != nil {
		return api.Response{}, err
	}

	a, err := s.Analyze(ctx)
	if err != nil {
		return api.Response{}, fmt.Errorf("analyzing %s: %w", path, err)
	}
	slog.Debug("request analyzed", "path", path, "fingerprint", a.Fingerprint)
	return api.NewResponse(req.Name, a), nil
}

package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// FindConfigs returns the *.xml documents directly inside dir, sorted.
// Subdirectories are not descended into.
func FindConfigs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// DiagnoseDir diagnoses every *.xml in dir concurrently. Each file gets an
// independent run with its own bag; a crashing configuration never affects
// its neighbours. Results come back in path order.
//
// jobs limits concurrency (<=0 means NumCPU). The sink receives per-file
// progress events; pass nil to discard them. The only error is a discovery
// failure or context cancellation.
func DiagnoseDir(ctx context.Context, dir string, opts Options, jobs int, sink ProgressSink) ([]*Result, error) {
	paths, err := FindConfigs(dir)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = nopSink{}
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	for _, p := range paths {
		sink.OnEvent(Event{File: p, Stage: StageParse, Status: StatusQueued})
	}

	results := make([]*Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sink.OnEvent(Event{File: path, Stage: StageParse, Status: StatusWorking})

			start := time.Now()
			fileOpts := opts
			fileOpts.ConfigPath = path
			fileOpts.Timer = nil // таймер не разделяется между горутинами
			res := Diagnose(fileOpts)
			results[i] = res

			status := StatusDone
			if res.Bag.HasErrors() {
				status = StatusError
			}
			sink.OnEvent(Event{
				File:    path,
				Stage:   StageReport,
				Status:  status,
				Errors:  len(res.Bag.Errors()),
				Elapsed: time.Since(start),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"arrowlint/internal/diag"
	"arrowlint/internal/fix"
	"arrowlint/internal/source"
	"arrowlint/internal/trace"
)

// Mode selects what Run does with each file.
type Mode uint8

const (
	ModeCheck Mode = iota
	ModeFix
)

func (m Mode) String() string {
	if m == ModeFix {
		return "fix"
	}
	return "check"
}

func (m Mode) stage() Stage {
	if m == ModeFix {
		return StageFix
	}
	return StageCheck
}

// Report is the outcome of Run. Results follow the order of the files.
type Report struct {
	FileSet *source.FileSet
	Results []FileResult
}

// Run checks or fixes the given files and directories in parallel, at most
// cfg.Run.Jobs at a time. A file that cannot be read yields a result with
// Err set and an IO diagnostic; it never stops the other files.
func Run(ctx context.Context, paths []string, mode Mode, opts Options) (*Report, error) {
	opts = opts.prepare()
	cfg := opts.Config
	ctx, span := trace.Start(ctx, trace.ScopeRun, mode.String())
	defer span.End()

	files, err := CollectFiles(paths, cfg)
	if err != nil && len(files) == 0 {
		span.Fail(err)
		return nil, err
	}
	span.Count("files", len(files))

	fs := source.NewFileSetWithBase(cfg.Root)
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		ids[i], loadErrs[i] = fs.Load(path)
		if loadErrs[i] != nil {
			// placeholder so that the IO diagnostic has a file to point at
			ids[i] = fs.Add(path, nil, 0)
		}
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs(cfg.Run.Jobs), len(files))))
	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processOne(gctx, fs, ids[i], loadErrs[i], mode, opts)
			return nil
		})
	}
	if werr := g.Wait(); werr != nil {
		return nil, werr
	}
	emit(opts.Progress, Event{Stage: mode.stage(), Status: StatusDone})
	// collect errors (missing paths) are reported next to the results
	return &Report{FileSet: fs, Results: results}, err
}

// jobs resolves run.jobs; zero means one worker per CPU.
func jobs(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

func processOne(ctx context.Context, fs *source.FileSet, id source.FileID, loadErr error, mode Mode, opts Options) FileResult {
	file := fs.Get(id)
	stage := mode.stage()
	start := time.Now()
	if loadErr != nil {
		emit(opts.Progress, Event{File: file.Path, Stage: StageLoad, Status: StatusError, Err: loadErr})
		return loadFailure(file, loadErr)
	}
	emit(opts.Progress, Event{File: file.Path, Stage: stage, Status: StatusWorking})

	var res *FileResult
	if mode == ModeFix {
		res = FixSource(ctx, fs, id, opts)
	} else {
		res = CheckSource(ctx, fs, id, opts)
	}

	status := StatusDone
	if res.Err != nil {
		status = StatusError
	}
	emit(opts.Progress, Event{File: file.Path, Stage: stage, Status: status, Err: res.Err, Elapsed: time.Since(start)})
	return *res
}

func loadFailure(file *source.File, err error) FileResult {
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.FileStart(file.ID), err.Error()))
	return FileResult{
		Path:   file.Path,
		FileID: file.ID,
		Bag:    bag,
		Err:    err,
	}
}

// RunSource checks or fixes in-memory content, typically stdin, under the
// display name name.
func RunSource(ctx context.Context, name string, content []byte, mode Mode, opts Options) *Report {
	opts = opts.prepare()
	fs := source.NewFileSetWithBase(opts.Config.Root)
	id := fs.AddVirtual(name, content)
	var res *FileResult
	if mode == ModeFix {
		res = FixSource(ctx, fs, id, opts)
	} else {
		res = CheckSource(ctx, fs, id, opts)
	}
	return &Report{FileSet: fs, Results: []FileResult{*res}}
}

// WriteFixes writes every changed, non-virtual result back to disk and
// returns the paths written.
func WriteFixes(report *Report) ([]string, error) {
	var written []string
	for i := range report.Results {
		r := &report.Results[i]
		if !r.Changed() || r.Virtual || r.Err != nil {
			continue
		}
		path := r.Path
		if !filepath.IsAbs(path) && report.FileSet != nil {
			if _, err := os.Stat(path); err != nil {
				path = filepath.Join(report.FileSet.BaseDir(), path)
			}
		}
		if err := fix.WriteFile(path, r.Fixed); err != nil {
			return written, fmt.Errorf("write %s: %w", r.Path, err)
		}
		written = append(written, r.Path)
	}
	return written, nil
}

// Diagnostics returns every diagnostic of the report, in file order.
func (r *Report) Diagnostics() *diag.Bag {
	all := diag.NewBag(0)
	for i := range r.Results {
		all.Merge(r.Results[i].Bag)
	}
	return all
}

package driver

import (
	"context"

	"arrowlint/internal/cache"
	"arrowlint/internal/diag"
	"arrowlint/internal/lexer"
	"arrowlint/internal/observ"
	"arrowlint/internal/sniff"
	"arrowlint/internal/source"
	"arrowlint/internal/trace"
)

// CheckSource lints one file of fs without fixing. Results come from the
// cache when the content and settings were seen before.
func CheckSource(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *FileResult {
	opts = opts.prepare()
	file := fs.Get(id)
	_, span := trace.Start(ctx, trace.ScopeFile, "check", trace.Path(file.Path))

	timer := observ.NewTimer()
	bag, cached := check(file, opts, timer)
	span.Count("diagnostics", bag.Len()).Count("cached", boolCount(cached)).End()

	return &FileResult{
		Path:    file.Path,
		FileID:  id,
		Bag:     bag,
		Virtual: file.Flags&source.FileVirtual != 0,
		Cached:  cached,
		Timing:  timer.Report(),
	}
}

func check(file *source.File, opts Options, timer *observ.Timer) (*diag.Bag, bool) {
	bag := diag.NewBag(opts.Config.Lint.MaxDiagnostics)

	var key cache.Digest
	if opts.Cache != nil {
		done := timer.Track("cache")
		key = cache.Key(opts.fingerprint, file.Content)
		if e, ok := opts.Cache.Get(key); ok {
			for _, d := range e.Restore(file.ID) {
				bag.Add(d)
			}
			done("hit")
			return bag, true
		}
		done("miss")
	}

	reporter := diag.BagReporter{Bag: bag}
	done := timer.Track("lex")
	toks := lexer.Tokenize(file, opts.lexOptions(reporter))
	done("")
	timer.Count("tokens", len(toks))

	done = timer.Track("sniff")
	f := sniff.NewFile(file, toks, sniff.Options{Reporter: reporter, Severity: opts.severity()})
	sniff.Run(f, opts.Sniffs)
	done("")
	timer.Count("errors", f.ErrorCount())
	timer.Count("warnings", f.WarningCount())

	bag.Sort()
	if opts.Cache != nil {
		// a failed write only costs a future miss
		_ = opts.Cache.Put(key, cache.NewEntry(bag.Items()))
	}
	return bag, false
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

package driver

import (
	"context"
	"errors"
	"fmt"

	"arrowlint/internal/diag"
	"arrowlint/internal/fix"
	"arrowlint/internal/lexer"
	"arrowlint/internal/observ"
	"arrowlint/internal/sniff"
	"arrowlint/internal/source"
	"arrowlint/internal/trace"
)

// FixSource runs the fixer over one file until it converges, then checks
// the result. The fixed content is added to fs as a new version of the
// same path; the returned FileID points at it. Nothing is written to disk.
func FixSource(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *FileResult {
	opts = opts.prepare()
	file := fs.Get(id)
	ctx, span := trace.Start(ctx, trace.ScopeFile, "fix", trace.Path(file.Path))

	res := &FileResult{
		Path:     file.Path,
		FileID:   id,
		Virtual:  file.Flags&source.FileVirtual != 0,
		Original: file.Restore(file.Content),
	}
	timer := observ.NewTimer()

	done := timer.Track("fix")
	loop, err := fix.Loop(ctx, file.Content, opts.Config.Fix.MaxPasses, func(ctx context.Context, content []byte, pass int) (*fix.Fixer, error) {
		_, ps := trace.Start(ctx, trace.ScopePass, "pass", trace.Pass(pass))
		fixer := fixPass(file, content, opts)
		ps.Count("commits", fixer.Commits()).End()
		return fixer, nil
	})
	done(loopOutcome(loop.Converged, loop.Fixes))
	timer.Count("passes", loop.Passes)
	timer.Count("fixes", loop.Fixes)

	res.Passes = loop.Passes
	res.Fixes = loop.Fixes
	res.Converged = loop.Converged

	notConverged := false
	switch {
	case err == nil, errors.Is(err, fix.ErrNoChanges):
	case errors.Is(err, fix.ErrDidNotConverge):
		notConverged = true
	default:
		res.Err = err
		res.Bag = diag.NewBag(0)
		span.Fail(err)
		span.End()
		return res
	}

	final := file
	if loop.Changed() {
		res.FileID = fs.Add(file.Path, loop.Content, file.Flags)
		final = fs.Get(res.FileID)
		res.Fixed = file.Restore(loop.Content)
	}

	bag, cached := check(final, opts, timer)
	res.Bag = bag
	res.Cached = cached
	if notConverged {
		// the bag may be full; the warning still has to reach the user
		d := diag.New(diag.SevWarning, diag.IOFixNotConverged, source.FileStart(res.FileID),
			fmt.Sprintf("fixer did not converge after %d passes; the file may still have violations", loop.Passes))
		if !bag.Add(d) {
			overflow := diag.NewBag(0)
			overflow.Add(d)
			bag.Merge(overflow)
		}
	}
	res.Timing = timer.Report()

	span.Count("passes", loop.Passes).Count("fixes", loop.Fixes).End()
	return res
}

// fixPass lexes content afresh and lets every sniff fix what it reports.
func fixPass(file *source.File, content []byte, opts Options) *fix.Fixer {
	scratch := source.NewFileSet()
	sf := scratch.Get(scratch.Add(file.Path, content, file.Flags|source.FileVirtual))
	toks := lexer.Tokenize(sf, opts.lexOptions(nil))
	fixer := fix.NewFixer(toks)
	f := sniff.NewFile(sf, toks, sniff.Options{
		// unlimited: a refused report would also refuse its fix
		Reporter: diag.BagReporter{Bag: diag.NewBag(0)},
		Fixer:    fixer,
		Severity: opts.severity(),
	})
	sniff.Run(f, opts.Sniffs)
	return fixer
}

func loopOutcome(converged bool, fixes int) string {
	switch {
	case !converged:
		return "unconverged"
	case fixes == 0:
		return "clean"
	default:
		return "fixed"
	}
}

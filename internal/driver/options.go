package driver

import (
	"arrowlint/internal/cache"
	"arrowlint/internal/config"
	"arrowlint/internal/diag"
	"arrowlint/internal/lexer"
	"arrowlint/internal/sniff"
)

// Options configure a check or fix.
type Options struct {
	// Config defaults to config.Default().
	Config *config.Config
	// Cache stores check results; nil disables caching.
	Cache *cache.Store
	// Sniffs defaults to the registered sniffs minus disabled_rules.
	Sniffs []sniff.Sniff
	// Progress receives per-file events from Run.
	Progress ProgressSink

	fingerprint string
	prepared    bool
}

func (o Options) prepare() Options {
	if o.prepared {
		return o
	}
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Sniffs == nil {
		o.Sniffs = sniff.Enabled(o.Config.Lint.DisabledRules)
	}
	if o.Cache != nil {
		o.fingerprint = o.Config.Fingerprint()
	}
	o.prepared = true
	return o
}

func (o Options) lexOptions(r diag.Reporter) lexer.Options {
	return lexer.Options{Reporter: r, TabWidth: o.Config.Lint.TabWidth}
}

// severity applies lint.severity to every sniff finding.
func (o Options) severity() map[string]diag.Severity {
	return map[string]diag.Severity{"*": o.Config.SeverityLevel()}
}

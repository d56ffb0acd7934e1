package driver

import (
	"arrowlint/internal/config"
	"arrowlint/internal/diag"
	"arrowlint/internal/lexer"
	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

// TokenizeResult holds the tokens of one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it with the configured tab width.
func Tokenize(path string, cfg *config.Config) (*TokenizeResult, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	fs := source.NewFileSetWithBase(cfg.Root)
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, id, cfg), nil
}

// TokenizeSource lexes in-memory content.
func TokenizeSource(name string, content []byte, cfg *config.Config) *TokenizeResult {
	if cfg == nil {
		cfg = config.Default()
	}
	fs := source.NewFileSetWithBase(cfg.Root)
	return tokenizeFile(fs, fs.AddVirtual(name, content), cfg)
}

func tokenizeFile(fs *source.FileSet, id source.FileID, cfg *config.Config) *TokenizeResult {
	file := fs.Get(id)
	bag := diag.NewBag(cfg.Lint.MaxDiagnostics)
	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, TabWidth: cfg.Lint.TabWidth})
	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}
}

package driver

import (
	"cxlint/internal/diag"
	"cxlint/internal/lexer"
	"cxlint/internal/source"
	"cxlint/internal/token"
)

// Options configures the tokenization driver.
type Options struct {
	// MaxDiagnostics bounds the per-file diagnostic bag.
	MaxDiagnostics int
	// Cache, when non-nil, is consulted by content hash before lexing
	// and updated after a successful lex.
	Cache *TokenCache
}

// TokenizeResult carries everything the CLI needs from one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// FromCache reports that the token stream was rebuilt from the
	// disk cache instead of lexed.
	FromCache bool
}

// Tokenize loads one file and lexes it. On a lexical error the
// returned error is the fatal lexer.Error, the bag holds the same
// diagnostic, and Tokens is empty: the file could not be lexed and
// must be excluded from analysis.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag}

	if cached, ok := opts.Cache.Get(file); ok {
		res.Tokens = cached
		res.FromCache = true
		return res, nil
	}

	lexOpts := lexer.Options{Reporter: diag.BagReporter{Bag: bag}}
	if err := lexer.Tokenize(file, lexOpts, &res.Tokens); err != nil {
		return res, err
	}

	// cache write failures are not fatal; note them and move on
	if err := opts.Cache.Put(file, res.Tokens); err != nil {
		bag.Add(diag.New(diag.SevInfo, diag.IOCacheError,
			source.Span{File: file.ID}, err.Error()))
	}
	return res, nil
}

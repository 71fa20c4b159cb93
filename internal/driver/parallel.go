package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"cxlint/internal/diag"
	"cxlint/internal/lexer"
	"cxlint/internal/source"
	"cxlint/internal/token"
)

// DefaultExtensions are the C++ source and header suffixes walked by
// TokenizeDir when the config does not override them.
var DefaultExtensions = []string{
	".cpp", ".cc", ".cxx", ".c",
	".hpp", ".hh", ".hxx", ".h",
}

// TokenizeDirResult is the outcome of lexing one file within a tree.
type TokenizeDirResult struct {
	Path      string
	FileID    source.FileID
	Tokens    []token.Token
	Bag       *diag.Bag
	FromCache bool
	// Err is the fatal load or lex error, if any; the file is then
	// excluded from analysis.
	Err error
}

// DirOptions configures TokenizeDir.
type DirOptions struct {
	Options
	// Extensions filters walked files; empty means DefaultExtensions.
	Extensions []string
	// Jobs bounds worker parallelism; <=0 means GOMAXPROCS.
	Jobs int
	// Progress receives per-file lifecycle events. May be nil.
	Progress ProgressSink
}

// ListSourceFiles returns the sorted relative walk of lintable files
// under dir.
func ListSourceFiles(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(extensions, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir lexes every matching file under dir in parallel.
// Individual load/lex failures land in the per-file result; only
// context cancellation aborts the whole walk.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	sink := ProgressSink(nopSink{})
	if opts.Progress != nil {
		sink = opts.Progress
	}

	// FileSet is not synchronized; preload sequentially, lex in
	// parallel. Load errors surface as per-file results below.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		sink.Send(Event{Path: path, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// каждый воркер пишет только в свой индекс — мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			res := TokenizeDirResult{Path: path, Bag: bag}

			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.NewError(diag.IOLoadFileError,
					source.Span{}, loadErr.Error()))
				res.Err = loadErr
				results[i] = res
				sink.Send(Event{Path: path, Status: StatusError})
				return nil
			}

			sink.Send(Event{Path: path, Status: StatusLexing})

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			res.FileID = fileID

			if cached, ok := opts.Cache.Get(file); ok {
				res.Tokens = cached
				res.FromCache = true
				results[i] = res
				sink.Send(Event{Path: path, Status: StatusDone})
				return nil
			}

			lexOpts := lexer.Options{Reporter: diag.BagReporter{Bag: bag}}
			if err := lexer.Tokenize(file, lexOpts, &res.Tokens); err != nil {
				res.Err = err
				results[i] = res
				sink.Send(Event{Path: path, Status: StatusError})
				return nil
			}

			if err := opts.Cache.Put(file, res.Tokens); err != nil {
				bag.Add(diag.New(diag.SevInfo, diag.IOCacheError,
					source.Span{File: file.ID}, err.Error()))
			}
			results[i] = res
			sink.Send(Event{Path: path, Status: StatusDone})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"mozuku/internal/checkrun"
	"mozuku/internal/diag"
	"mozuku/internal/extract"
	"mozuku/internal/grammar"
	"mozuku/internal/morph"
	"mozuku/internal/source"
)

// FileReport is the outcome of checking one file on disk.
type FileReport struct {
	Path     string
	Language extract.Language
	Result   AnalysisResult
	Timings  checkrun.Timings
}

// ListFiles expands the argument paths into the files to check. Plain
// files are taken as given, directories are walked for checkable
// extensions. The result is sorted and duplicate-free.
func ListFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("list files: %w", err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, ok := extract.FromPath(p); ok {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// CheckPaths analyzes files in parallel, at most jobs at a time,
// reporting per-stage progress to sink. Reports come back in input
// order. A file that fails to load still yields a report whose bag
// carries the load error as a diagnostic.
func CheckPaths(ctx context.Context, analyzer morph.Analyzer, files []string, cfg grammar.Config, maxDiagnostics, jobs int, sink checkrun.ProgressSink) ([]FileReport, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	emit := func(evt checkrun.Event) {
		if sink != nil {
			sink.OnEvent(evt)
		}
	}
	for _, path := range files {
		emit(checkrun.Event{File: path, Status: checkrun.StatusQueued})
	}

	// Каждая горутина пишет только в свой индекс, мьютекс не нужен.
	reports := make([]FileReport, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				reports[i] = checkFile(gctx, analyzer, path, cfg, maxDiagnostics, emit)
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

func checkFile(ctx context.Context, analyzer morph.Analyzer, path string, cfg grammar.Config, maxDiagnostics int, emit func(checkrun.Event)) FileReport {
	lang, _ := extract.FromPath(path)
	report := FileReport{Path: path, Language: lang}

	text, err := source.Load(path)
	if err != nil {
		bag := diag.NewBag(maxDiagnostics)
		bag.Add(diag.New(diag.SevError, diag.IOLoadFile, source.Span{}, err.Error()))
		report.Result = AnalysisResult{Language: lang, Bag: bag}
		emit(checkrun.Event{File: path, Status: checkrun.StatusError, Err: err})
		return report
	}

	content := text.String()

	emit(checkrun.Event{File: path, Stage: checkrun.StageExtract, Status: checkrun.StatusWorking})
	begin := time.Now()
	p := Prepare(ctx, string(lang), content)
	report.Timings.Set(checkrun.StageExtract, time.Since(begin))

	emit(checkrun.Event{File: path, Stage: checkrun.StageTokenize, Status: checkrun.StatusWorking})
	begin = time.Now()
	tokens, sentences := Tokenize(analyzer, p.AnalysisText)
	report.Timings.Set(checkrun.StageTokenize, time.Since(begin))

	emit(checkrun.Event{File: path, Stage: checkrun.StageGrammar, Status: checkrun.StatusWorking})
	begin = time.Now()
	bag := diag.NewBag(maxDiagnostics)
	grammar.Check(p.AnalysisText, tokens, sentences, cfg, bag)
	bag.Sort()
	report.Timings.Set(checkrun.StageGrammar, time.Since(begin))

	report.Result = AnalysisResult{
		Text:      text,
		Analysis:  source.FromString(p.AnalysisText),
		Language:  p.Language,
		Supported: p.Supported,
		Tokens:    tokens,
		Sentences: sentences,
		Comments:  p.Comments,
		Contents:  p.Contents,
		Bag:       bag,
	}
	emit(checkrun.Event{File: path, Status: checkrun.StatusDone, Elapsed: report.Timings.Total()})
	return report
}

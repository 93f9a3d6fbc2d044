package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the extension of YASL source files.
const SourceExt = ".yasl"

// FileResult is the outcome of one file in a batch. Err carries the
// file's pipeline error; Output may still be set for rendering it.
type FileResult struct {
	Path   string
	Output *Output
	Err    error
}

// ListSources возвращает отсортированный список всех *.yasl файлов в директории
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// EmitDir generates every *.yasl file under dir. Results are ordered by path.
func EmitDir(ctx context.Context, dir string, opts Options) ([]FileResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}
	return EmitFiles(ctx, files, opts)
}

// EmitFiles runs Emit on each path with at most opts.Jobs files in flight.
// A failing file does not stop the others; the returned error is only set
// on cancellation. results[i] always belongs to paths[i].
func EmitFiles(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			out, err := Emit(gctx, path, opts)
			results[i] = FileResult{Path: path, Output: out, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

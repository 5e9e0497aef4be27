package csslex

import (
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of tokenizing one file.
type Result struct {
	Path   string
	Lex    *Tokenizer
	Errors []*LexError
}

// Driver tokenizes a set of files with a shared configuration, one tokenizer
// per file, fanning the files out across goroutines. Each tokenizer remains
// single-threaded; only whole files run in parallel.
type Driver struct {
	opts []Option
}

// NewDriver creates a driver that applies opts to every tokenizer it builds.
func NewDriver(opts ...Option) *Driver {
	return &Driver{opts: opts}
}

// Run tokenizes every path and returns the per-file results in argument
// order. Parse errors land in the results; I/O and configuration failures
// abort the whole run.
func (d *Driver) Run(paths ...string) ([]Result, error) {
	results := make([]Result, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			t, err := TokenizeFile(path, d.opts...)
			if err != nil {
				if _, ok := err.(*LexError); !ok || t == nil {
					return err
				}
			}

			results[i] = Result{Path: path, Lex: t, Errors: t.Errors()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

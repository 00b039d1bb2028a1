package localedir

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Codeislaw2049/CryptoKey/localepatch"
	"github.com/Codeislaw2049/CryptoKey/localepatch/debug"
	"github.com/Codeislaw2049/CryptoKey/localepatch/encode"
	"github.com/Codeislaw2049/CryptoKey/localepatch/eval"
	"github.com/Codeislaw2049/CryptoKey/localepatch/ir"
	"github.com/Codeislaw2049/CryptoKey/localepatch/libdiff"
	"github.com/Codeislaw2049/CryptoKey/localepatch/parse"
)

// EditFunc edits the catalog of loc in place and reports whether it
// changed it.
type EditFunc func(loc Locale, doc *ir.Node) (bool, error)

type Options struct {
	// DryRun computes diffs and writes nothing.
	DryRun bool
	// Diff computes diffs also when writing.
	Diff   bool
	Colors *libdiff.Colors

	// Indent is the number of spaces per nesting level in written
	// catalogs; 0 means 2.
	Indent int

	// Create starts locales without a catalog from an empty document
	// instead of skipping them.
	Create bool

	// Filter selects locales; Known tells it which languages the caller
	// has data for.
	Filter *eval.Filter
	Known  func(lang string) bool

	// Allowed, if not nil, restricts changes to these paths.  An edit
	// touching anything else fails with localepatch.ErrUnexpectedChange.
	Allowed []*ir.Path

	// Only skips every other locale.
	Only func(loc Locale) bool

	// Progress is called with each result as it is made.
	Progress func(*Result)
}

// Run applies fn to the catalog of every locale under root, in name
// order.  A locale that fails is reported and left as it was; the run goes
// on with the next one.  Run returns an error only if root cannot be
// listed, or if ctx is done, in which case the report covers the locales
// processed so far.
func Run(ctx context.Context, root string, opts *Options, fn EditFunc) (*Report, error) {
	locs, err := Discover(root)
	if err != nil {
		return nil, err
	}
	rep := &Report{DryRun: opts.DryRun}
	for _, loc := range locs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if opts.Only != nil && !opts.Only(loc) {
			continue
		}
		res := runOne(root, loc, opts, fn)
		if debug.Run() {
			debug.Logf("%s: %s %v\n", loc.Lang, res.Status, res.Err)
		}
		rep.Results = append(rep.Results, res)
		if opts.Progress != nil {
			opts.Progress(&rep.Results[len(rep.Results)-1])
		}
	}
	return rep, nil
}

func runOne(root string, loc Locale, opts *Options, fn EditFunc) Result {
	res := Result{Lang: loc.Lang, Path: loc.Path}
	fail := func(err error) Result {
		res.Status = Failed
		res.Err = err
		return res
	}
	if loc.Missing && !opts.Create {
		res.Status = Skipped
		res.Err = fmt.Errorf("%w in %s", ErrMissingFile, loc.Dir)
		return res
	}
	if opts.Filter != nil {
		known := false
		if opts.Known != nil {
			known = opts.Known(loc.Lang)
		}
		ok, err := opts.Filter.Match(eval.LocaleEnv(loc.Lang, loc.Dir, known))
		if err != nil {
			return fail(err)
		}
		if !ok {
			res.Status = Skipped
			return res
		}
	}
	var (
		orig []byte
		mode os.FileMode = 0644
		doc  *ir.Node
	)
	if loc.Missing {
		doc = ir.Object()
	} else {
		fi, err := os.Stat(loc.Path)
		if err != nil {
			return fail(fmt.Errorf("%w: %w", ErrRead, err))
		}
		mode = fi.Mode().Perm()
		orig, err = os.ReadFile(loc.Path)
		if err != nil {
			return fail(fmt.Errorf("%w: %w", ErrRead, err))
		}
		doc, err = parse.Parse(orig)
		if err != nil {
			return fail(err)
		}
	}
	changed, err := fn(loc, doc)
	if err != nil {
		return fail(err)
	}
	if !changed && !loc.Missing {
		res.Status = Unchanged
		return res
	}
	encOpts := []encode.EncodeOption{encode.FinalNewline(bytes.HasSuffix(orig, []byte("\n")))}
	if opts.Indent > 0 {
		encOpts = append(encOpts, encode.Indent(opts.Indent))
	}
	out, err := encode.Bytes(doc, encOpts...)
	if err != nil {
		return fail(err)
	}
	if opts.Allowed != nil && !loc.Missing {
		if err := localepatch.VerifyChange(orig, out, opts.Allowed); err != nil {
			return fail(err)
		}
	}
	if opts.DryRun || opts.Diff {
		name := loc.Path
		if rel, err := filepath.Rel(root, loc.Path); err == nil {
			name = rel
		}
		from := "a/" + filepath.ToSlash(name)
		if loc.Missing {
			from = "/dev/null"
		}
		res.Diff = libdiff.String(from, "b/"+filepath.ToSlash(name), string(orig), string(out), opts.Colors)
	}
	res.Status = Updated
	if loc.Missing {
		res.Status = Created
	}
	if opts.DryRun {
		return res
	}
	if err := writeFile(loc.Path, out, mode); err != nil {
		return fail(err)
	}
	return res
}

// writeFile replaces path with d by way of a temporary file in the same
// directory, so readers see either the old or the new content.
func writeFile(path string, d []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpPath := tmp.Name()
	closed := false
	defer func() {
		if !closed {
			tmp.Close()
		}
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			debug.Logf("could not remove %s: %v\n", tmpPath, err)
		}
	}()
	if _, err := tmp.Write(d); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	closed = true
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

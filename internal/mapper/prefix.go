package mapper

import (
	"path"
	"path/filepath"
	"strings"
)

// PrefixPath builds the public location of a bundle file: the file's
// extension (and a ".min" suffix) is dropped and the result is joined onto
// prefix with forward slashes. A "scheme://" or protocol-relative "//" at the
// start of prefix is kept verbatim. Empty and "." segments are collapsed,
// ".." is kept as is.
//
//	PrefixPath("http://cdn.example.com/js/", "a/b/bundle.min.js") // "http://cdn.example.com/js/a/b/bundle"
//	PrefixPath("static/js", "bundle.js")                          // "static/js/bundle"
func PrefixPath(prefix, name string) string {
	scheme, rest := splitScheme(prefix)

	return scheme + joinSlash(rest, stripExt(name))
}

// location returns the public location for a bundle's output file.
func location(prefix, outFile string) string {
	return PrefixPath(prefix, filepath.Base(outFile))
}

func splitScheme(prefix string) (string, string) {
	before, after, ok := strings.Cut(prefix, "//")
	if !ok {
		return "", prefix
	}

	if before == "" || (strings.HasSuffix(before, ":") && !strings.Contains(before, "/")) {
		return before + "//", after
	}

	return "", prefix
}

func stripExt(name string) string {
	name = filepath.ToSlash(name)
	dir, file := path.Split(name)

	base := strings.TrimSuffix(file, path.Ext(file))
	base = strings.TrimSuffix(base, ".min")

	if base == "" {
		return name
	}

	return dir + base
}

func joinSlash(elems ...string) string {
	var (
		segments []string
		rooted   bool
	)

	for _, e := range elems {
		if len(segments) == 0 && !rooted && strings.HasPrefix(e, "/") {
			rooted = true
		}

		for s := range strings.SplitSeq(e, "/") {
			if s == "" || s == "." {
				continue
			}

			segments = append(segments, s)
		}
	}

	joined := strings.Join(segments, "/")
	if rooted {
		return "/" + joined
	}

	return joined
}

package config

import (
	"fmt"
	"path/filepath"

	"multibundle-mapper/internal/bundle"
	"multibundle-mapper/internal/diagnostic"
	"multibundle-mapper/internal/mapper"
)

// Validate checks the configuration for problems that would make a run fail
// before any record is read.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError(diagnostic.CodeUnsupportedField, fmt.Sprintf("unsupported config version %q", f.Version), "", "version")
	}

	if len(f.Targets) == 0 {
		res.AddError(diagnostic.CodeNoTargets, "at least one target is required", "", "targets")
		return res
	}

	seenOutputs := map[string]int{}

	for i := range f.Targets {
		t := &f.Targets[i]
		name := fmt.Sprintf("targets[%d]", i)

		if t.Output == "" {
			res.AddError(diagnostic.CodeMissingOutput, "output path is required", name, "output")
		} else {
			clean := filepath.Clean(t.Output)
			if prev, ok := seenOutputs[clean]; ok {
				res.AddError(diagnostic.CodeDuplicateOutput,
					fmt.Sprintf("output %q is also written by targets[%d]", t.Output, prev), name, "output")
			} else {
				seenOutputs[clean] = i
			}

			name = t.Output
		}

		format, err := mapper.ParseFormat(t.Format)
		if err != nil {
			res.AddError(diagnostic.CodeUnknownFormat, err.Error(), name, "format")
			res.Suggest(diagnostic.Suggest(t.Format, mapper.FormatNames(), 2)...)

			continue
		}

		validateMarkers(res, name, format, t.Markers)
	}

	return res
}

func validateMarkers(res *diagnostic.Diagnostics, name string, format mapper.Format, markers *bundle.Markers) {
	if markers == nil {
		return
	}

	m := markers.Or(format.DefaultMarkers())

	if format != mapper.FormatJSON {
		if m.Mapping == m.Bundles {
			res.AddWarning(diagnostic.CodeInvalidMarker, "mapping and bundles markers are identical", name, "markers")
		}

		return
	}

	if _, err := bundle.ParseDocPath(m.Mapping); err != nil {
		res.AddError(diagnostic.CodeInvalidMarker, err.Error(), name, "markers.mapping")
	}

	if _, err := bundle.ParseDocPath(m.Bundles); err != nil {
		res.AddError(diagnostic.CodeInvalidMarker, err.Error(), name, "markers.bundles")
	}
}

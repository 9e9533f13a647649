package extract

import (
	"fmt"

	"bulkrename/internal/faults"
)

// Constructor builds one extractor instance from the run settings.
type Constructor func(Settings) (Extractor, error)

// Info describes a registered module for listings.
type Info struct {
	Name    string
	Keys    []string
	Summary string
}

type registration struct {
	info Info
	ctor Constructor
}

// registrations is ordered; it doubles as the listing order.
var registrations = []registration{
	{Info{"number", []string{"n"}, "sequence counter starting at --number"}, newNumber},
	{Info{"regex", []string{"<named groups>"}, "named capture groups of --regex matched against the path"}, newRegex},
	{Info{"hash", []string{"hash"}, "hex digest of the file content (--algorithm)"}, newHash},
	{Info{"mime", []string{"mime"}, "extension guessed from the sniffed MIME type"}, newMime},
	{Info{"stat", statKeys, "filesystem metadata from stat(2)"}, newStat},
	{Info{"font", fontKeys, "TrueType name table fields"}, newFont},
	{Info{"image", []string{"width", "height", "ratio"}, "decoded image dimensions"}, newImage},
}

var registry = func() map[string]Constructor {
	m := make(map[string]Constructor, len(registrations))
	for _, r := range registrations {
		m[r.info.Name] = r.ctor
	}
	return m
}()

// Modules lists the registered modules in their canonical order.
func Modules() []Info {
	out := make([]Info, 0, len(registrations))
	for _, r := range registrations {
		out = append(out, r.info)
	}
	return out
}

// Names returns the registered module names in canonical order.
func Names() []string {
	out := make([]string, 0, len(registrations))
	for _, r := range registrations {
		out = append(out, r.info.Name)
	}
	return out
}

// Build instantiates one extractor per selected name, preserving order and
// duplicates. Unknown names and invalid settings are configuration errors,
// reported before any file is touched.
func Build(names []string, settings Settings) ([]Named, error) {
	out := make([]Named, 0, len(names))
	for _, name := range names {
		ctor, ok := registry[name]
		if !ok {
			return nil, faults.Wrap(faults.ErrConfiguration, "registry", "", fmt.Sprintf("unknown module: %s", name), nil)
		}
		ex, err := ctor(settings)
		if err != nil {
			return nil, faults.Wrap(faults.ErrConfiguration, "registry", name, "", err)
		}
		out = append(out, Named{Name: name, Extractor: ex})
	}
	return out, nil
}

// Package extract provides the pluggable metadata extractors that feed the
// name composer.
//
// An Extractor turns one file path into a small set of named values (its
// placeholders). Extractors are built once per run from symbolic module names
// through the registry and may keep private sequential state between calls,
// as the number extractor does with its counter. File-reading extractors open,
// consume, and close the file within a single call.
package extract

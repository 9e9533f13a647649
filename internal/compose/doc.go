// Package compose turns a source path into its new name.
//
// For every file the Composer seeds a placeholder set with the stem ({name})
// and extension ({ext}), merges the output of each configured extractor in
// order while refusing to overwrite any key, renders the format template
// against the result, and optionally cuts the rendered name to a maximum
// length. The directory component is returned untouched.
//
// Templates use brace syntax: {key} substitutes a value, {key:spec} applies a
// format spec ([[fill]align][sign][0][width][.precision][type]), and {{ / }}
// produce literal braces.
package compose

// Package spec reads axis annotation specs from TOML, YAML, or JSON.
//
// A spec file is the file-based host boundary: it carries the tick list
// (anchor, size, text), the axis side, an optional coordinate range, and
// layout/leader/style configuration. Programs embedding annotick as a
// library can skip this package entirely and construct []axis.Label
// directly from their own plot state.
package spec

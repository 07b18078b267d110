// Package render turns table.Derivation values into human- and
// machine-readable output.
//
// Formats:
//   - table:    the Taylor table drawn with go-pretty, followed by the
//     solved weights (as fractions where a small one matches), the leading
//     error term and the order summary.
//   - markdown: the same table as a Markdown grid.
//   - json:     a Report document (encoding/json).
//   - yaml:     the same Report (gopkg.in/yaml.v3).
package render

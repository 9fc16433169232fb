// Package assets holds the static data files shipped inside the binary.
package assets

import "embed"

// FS contains the bundled resource tree rooted at "resources".
//
//go:embed resources
var FS embed.FS

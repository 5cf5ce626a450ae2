// Package assets holds the data files compiled into the binary.
package assets

import (
	"embed"
	"io/fs"
)

// Scenes holds the bundled scene files under scenes/.
//
//go:embed scenes/*.json
var Scenes embed.FS

// DemoScene is the path of the default scene inside Scenes.
const DemoScene = "scenes/demo.json"

// ReadScene returns the raw bytes of a bundled scene.
func ReadScene(name string) ([]byte, error) {
	return fs.ReadFile(Scenes, name)
}

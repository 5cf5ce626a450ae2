package game

import (
	"path/filepath"

	"github.com/spacehole-rogue/orrery/internal/texture"
	"github.com/spacehole-rogue/orrery/internal/world"
)

// LoadTextures loads one texture per body from dir, indexed like the body
// list. A body with no texture name, or whose file cannot be decoded, gets a
// procedural texture in its own colour instead.
func LoadTextures(sys *world.SolarSystem, dir string) []*texture.Texture {
	out := make([]*texture.Texture, sys.Len())
	loaded := 0
	for i := range out {
		b := sys.Body(i)
		if b.Texture != "" && dir != "" {
			tex, err := texture.Load(filepath.Join(dir, b.Texture))
			if err == nil {
				out[i] = tex
				loaded++
				continue
			}
			Logger().Warn("texture unavailable, using procedural", "body", b.Name, "err", err)
		}
		out[i] = texture.Procedural(b.Color, int64(i)+1)
	}
	Logger().Info("textures ready", "dir", dir, "loaded", loaded, "procedural", len(out)-loaded)
	return out
}

package graphics

import (
	"log/slog"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"slotgrid/internal/logging"
)

// TextureCache loads item icons on first use. Paths that fail to load are
// remembered so the failure is logged once and not retried every frame.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[string]uint32
	missing  map[string]struct{}
	load     func(path string) (uint32, error)
}

func NewTextureCache() *TextureCache {
	return &TextureCache{
		textures: make(map[string]uint32),
		missing:  make(map[string]struct{}),
		load: func(path string) (uint32, error) {
			tex, _, _, err := LoadTexture(path)
			return tex, err
		},
	}
}

// Get returns the texture for path. ok is false when the file could not be
// loaded, in which case callers draw a placeholder.
func (c *TextureCache) Get(path string) (uint32, bool) {
	if path == "" {
		return 0, false
	}

	c.mu.RLock()
	tex, ok := c.textures[path]
	_, bad := c.missing[path]
	c.mu.RUnlock()
	if ok {
		return tex, true
	}
	if bad {
		return 0, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.textures[path]; ok {
		return tex, true
	}
	if _, bad := c.missing[path]; bad {
		return 0, false
	}

	tex, err := c.load(path)
	if err != nil {
		slog.Warn("Texture unavailable, drawing placeholder", logging.Path(path), logging.Error(err))
		c.missing[path] = struct{}{}
		return 0, false
	}
	c.textures[path] = tex
	return tex, true
}

// Delete releases every loaded texture.
func (c *TextureCache) Delete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path, tex := range c.textures {
		gl.DeleteTextures(1, &tex)
		delete(c.textures, path)
	}
}

// internal/assets/sprite_manager.go
package assets

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"go-zombie-arena/internal/defs"
)

// LoadFunc decodes one image file.
type LoadFunc func(path string) (*ebiten.Image, error)

// LoadFromFile is the default LoadFunc.
func LoadFromFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// PlayerSprite is the file name of the player sprite.
const PlayerSprite = "player.png"

// SpriteManager caches sprites by file name. Missing or broken files are skipped;
// the renderer then falls back to flat shapes.
type SpriteManager struct {
	dir     string
	load    LoadFunc
	sprites map[string]*ebiten.Image
	logger  zerolog.Logger
}

// NewSpriteManager creates a manager reading from dir. A nil load uses
// LoadFromFile.
func NewSpriteManager(dir string, load LoadFunc, logger zerolog.Logger) *SpriteManager {
	if load == nil {
		load = LoadFromFile
	}
	return &SpriteManager{
		dir:     dir,
		load:    load,
		sprites: make(map[string]*ebiten.Image),
		logger:  logger.With().Str("component", "assets").Logger(),
	}
}

// Load reads each named file from the directory and returns how many
// were found.
func (m *SpriteManager) Load(names ...string) int {
	loaded := 0
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := m.sprites[name]; ok {
			continue
		}
		path := filepath.Join(m.dir, name)
		img, err := m.load(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				m.logger.Debug().Str("path", path).Msg("sprite not found, using shape")
			} else {
				m.logger.Warn().Err(err).Str("path", path).Msg("failed to load sprite")
			}
			continue
		}
		if img == nil {
			continue
		}
		m.sprites[name] = img
		loaded++
	}
	return loaded
}

// LoadAll loads the player sprite and one sprite per enemy definition.
func (m *SpriteManager) LoadAll(library map[defs.EnemyType]defs.EnemyDefinition) int {
	names := []string{PlayerSprite}
	for _, def := range library {
		names = append(names, def.Sprite)
	}
	loaded := m.Load(names...)
	m.logger.Info().Int("loaded", loaded).Str("dir", m.dir).Msg("sprites loaded")
	return loaded
}

// Sprite returns the named sprite, if it was loaded.
func (m *SpriteManager) Sprite(name string) (*ebiten.Image, bool) {
	if m == nil {
		return nil, false
	}
	img, ok := m.sprites[name]
	return img, ok
}

// Cleanup releases every sprite.
func (m *SpriteManager) Cleanup() {
	for name, img := range m.sprites {
		img.Deallocate()
		delete(m.sprites, name)
	}
}

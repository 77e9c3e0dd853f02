package leveldata

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group and object names understood by the loader.
const (
	GroupSlingshot = "Slingshot"
	GroupTargets   = "Targets"
	GroupGround    = "Ground"

	PointAnchor = "anchor"
	PointIdle   = "idle"
	PointLeft   = "left"
	PointRight  = "right"
)

var (
	ErrNoSlingshot = errors.New("level has no complete Slingshot group (anchor, idle, left, right)")
	ErrNoTargets   = errors.New("level has no targets")
)

// LoadLevel parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	level, err := fromMap(levelMap)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}
	level.Name = strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	return level, nil
}

// ReadLevel parses TMX data from r. External tilesets are resolved relative to
// baseDir.
func ReadLevel(baseDir string, r io.Reader) (*Level, error) {
	levelMap, err := tiled.LoadReader(baseDir, r)
	if err != nil {
		return nil, fmt.Errorf("read TMX: %w", err)
	}
	return fromMap(levelMap)
}

func fromMap(m *tiled.Map) (*Level, error) {
	level := &Level{
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}
	if m.Properties != nil {
		level.MaxShots = m.Properties.GetInt("maxShots")
	}

	found := map[string]bool{}
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupSlingshot:
			for _, o := range og.Objects {
				p := gamemath.V(o.X, o.Y)
				switch o.Name {
				case PointAnchor:
					level.Slingshot.Anchor = p
					level.Slingshot.ZoneRadius = o.Properties.GetFloat("zone")
				case PointIdle:
					level.Slingshot.Idle = p
				case PointLeft:
					level.Slingshot.Left = p
				case PointRight:
					level.Slingshot.Right = p
				default:
					continue
				}
				found[o.Name] = true
			}
		case GroupTargets:
			for _, o := range og.Objects {
				level.Targets = append(level.Targets, TargetSpawn{
					Rect:            gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					MaxHealth:       o.Properties.GetFloat("maxHealth"),
					DamageThreshold: o.Properties.GetFloat("damageThreshold"),
				})
			}
		case GroupGround:
			for _, o := range og.Objects {
				level.Ground = append(level.Ground, gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	for _, name := range []string{PointAnchor, PointIdle, PointLeft, PointRight} {
		if !found[name] {
			return nil, fmt.Errorf("%w: missing %q", ErrNoSlingshot, name)
		}
	}
	if len(level.Targets) == 0 {
		return nil, ErrNoTargets
	}
	return level, nil
}

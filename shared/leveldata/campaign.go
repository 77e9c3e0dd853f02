package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// CampaignEntry names one level and its TMX file, relative to the manifest.
type CampaignEntry struct {
	Name string `yaml:"name"`
	Map  string `yaml:"map"`
}

// Campaign is the ordered list of levels played one after another.
type Campaign struct {
	Levels []CampaignEntry `yaml:"levels"`

	fsys fs.FS
	dir  string
}

var ErrEmptyCampaign = errors.New("campaign lists no levels")

// LoadCampaign reads a YAML manifest from fsys.
func LoadCampaign(fsys fs.FS, manifestPath string) (*Campaign, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read campaign %s: %w", manifestPath, err)
	}
	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse campaign %s: %w", manifestPath, err)
	}
	if len(c.Levels) == 0 {
		return nil, fmt.Errorf("campaign %s: %w", manifestPath, ErrEmptyCampaign)
	}
	for i, entry := range c.Levels {
		if entry.Map == "" {
			return nil, fmt.Errorf("campaign %s: level %d has no map", manifestPath, i)
		}
	}
	c.fsys = fsys
	c.dir = path.Dir(manifestPath)
	return &c, nil
}

func (c *Campaign) Len() int {
	return len(c.Levels)
}

// HasNext reports whether a level follows index.
func (c *Campaign) HasNext(index int) bool {
	return index+1 < len(c.Levels)
}

// Load parses the level at index.
func (c *Campaign) Load(index int) (*Level, error) {
	if index < 0 || index >= len(c.Levels) {
		return nil, fmt.Errorf("campaign level %d out of range [0, %d)", index, len(c.Levels))
	}
	entry := c.Levels[index]
	level, err := LoadLevel(c.fsys, path.Join(c.dir, entry.Map))
	if err != nil {
		return nil, err
	}
	if entry.Name != "" {
		level.Name = entry.Name
	}
	return level, nil
}

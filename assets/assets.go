package assets

import (
	"embed"
	"io/fs"
)

// CampaignManifest is the campaign file inside Levels.
const CampaignManifest = "campaign.yaml"

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:scripts
	scriptFS embed.FS
)

// Levels holds the TMX maps and the campaign manifest.
func Levels() fs.FS {
	return mustSub(levelFS, "levels")
}

// Scripts holds the Lua scripts, addressed as "scripts/<name>.lua".
func Scripts() fs.FS {
	return scriptFS
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

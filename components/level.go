package components

import "github.com/yohamta/donburi"

type LevelData struct {
	Name   string
	Index  int
	Width  float64
	Height float64
}

var Level = donburi.NewComponentType[LevelData]()

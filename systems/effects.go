package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/yohamta/donburi"
)

// UpdateAutoDestroy counts down AutoDestroy entities and hands expired ones
// to remove.
func UpdateAutoDestroy(w donburi.World, remove func(*donburi.Entry)) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(w, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
		}
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		if e.Valid() {
			remove(e)
		}
	}
}

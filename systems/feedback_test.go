package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
)

func TestHUDReportShotUsed(t *testing.T) {
	w := donburi.NewWorld()
	entry := factory.CreateHUD(w, 3)
	hud := NewHUD(w)

	for _, n := range []int{0, 2, 4, -1} {
		hud.ReportShotUsed(n)
	}

	want := []bool{false, true, false}
	got := components.ShotIcons.Get(entry).Used
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Used[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	hud.ShowEndScreen(false)
	if screen := components.EndScreen.Get(entry); !screen.Visible || screen.HasNext {
		t.Errorf("end screen = %+v, want visible without next", *screen)
	}
}

func TestAudioQueue(t *testing.T) {
	w := donburi.NewWorld()
	factory.CreateAudio(w)
	queue := NewAudioQueue(w, rand.New(rand.NewPCG(7, 7)))

	queue.PlayClip(cfg.SoundNone, nil)
	queue.PlayRandomClip(nil, nil)
	if got := DrainSFX(w); len(got) != 0 {
		t.Fatalf("queued %v, want nothing", got)
	}

	released := cfg.Sound.ElasticReleased
	for i := 0; i < 50; i++ {
		queue.PlayRandomClip(released, nil)
	}
	queue.PlayClip(cfg.SoundTargetDeath, nil)

	got := DrainSFX(w)
	if len(got) != 51 {
		t.Fatalf("queued %d sounds, want 51", len(got))
	}
	seen := map[cfg.SoundID]bool{}
	for _, id := range got[:50] {
		ok := false
		for _, r := range released {
			ok = ok || id == r
		}
		if !ok {
			t.Fatalf("random clip %v is not a release clip", id)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Errorf("50 random picks used %d distinct clips", len(seen))
	}
	if got[50] != cfg.SoundTargetDeath {
		t.Errorf("last sound = %v, want %v", got[50], cfg.SoundTargetDeath)
	}
}

func TestCameraFraming(t *testing.T) {
	w := donburi.NewWorld()
	levelEntry := w.Entry(w.Create(components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{Width: 1280, Height: 480})
	cameraEntry := factory.CreateCamera(w, testAnchor)
	framing := NewCameraFraming(w)

	settle := func() {
		for i := 0; i < 600; i++ {
			UpdateCamera(w)
		}
	}

	// The idle focus is pulled inside the level so the view never shows past
	// its edges.
	settle()
	camera := components.Camera.Get(cameraEntry)
	halfW, halfH := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	want := gamemath.V(halfW, 480-halfH)
	if math.Abs(camera.Position.X-want.X) > 1e-6 || math.Abs(camera.Position.Y-want.Y) > 1e-6 {
		t.Errorf("idle camera at %v, want %v", camera.Position, want)
	}

	proj := factory.CreateProjectile(w, gamemath.V(700, 240), gamemath.V(1, 0), 12, 12)
	framing.SetFollowFraming(proj)
	settle()
	if math.Abs(camera.Position.X-700) > 1e-6 || math.Abs(camera.Position.Y-240) > 1e-6 {
		t.Errorf("following camera at %v, want (700, 240)", camera.Position)
	}

	// Losing the followed body freezes the camera.
	held := camera.Position
	w.Remove(proj.Entity())
	UpdateCamera(w)
	if camera.Position != held {
		t.Errorf("camera moved to %v after its target was removed", camera.Position)
	}

	framing.SetIdleFraming()
	if camera.Mode != components.FramingIdle || camera.Follow != nil {
		t.Errorf("camera = %+v, want idle framing", *camera)
	}
}

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"OutElastic", true},
		{"linear", true},
		{"InOutQuad", true},
		{"wobble", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := Easing(tt.name)
			if ok != tt.ok {
				t.Errorf("Easing(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if fn == nil {
				t.Errorf("Easing(%q) returned a nil func", tt.name)
			}
		})
	}
}

func TestTween(t *testing.T) {
	t.Run("zero duration applies immediately", func(t *testing.T) {
		s := NewScheduler(60)
		var got []float64
		done := 0
		id := Tween(s, 0, nil, func(v float64) { got = append(got, v) }, func() { done++ })
		if id != 0 || len(got) != 1 || got[0] != 1 || done != 1 {
			t.Errorf("id = %d values = %v done = %d, want 0, [1] and 1", id, got, done)
		}
	})

	t.Run("runs to completion", func(t *testing.T) {
		s := NewScheduler(60)
		fn, _ := Easing("linear")
		var got []float64
		done := 0
		id := Tween(s, 0.5, fn, func(v float64) { got = append(got, v) }, func() { done++ })

		for i := 0; i < 40; i++ {
			s.Update()
		}
		if s.Active(id) {
			t.Fatal("tween still running after 40 frames of a 30 frame tween")
		}
		if len(got) < 30 || len(got) > 31 {
			t.Errorf("applied %d times, want 30 or 31", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i] < got[i-1] {
				t.Fatalf("linear tween went backwards at step %d: %v", i, got)
			}
		}
		if got[len(got)-1] != 1 {
			t.Errorf("last value = %v, want 1", got[len(got)-1])
		}
		if done != 1 {
			t.Errorf("done called %d times, want 1", done)
		}
	})

	t.Run("cancelled tween skips done", func(t *testing.T) {
		s := NewScheduler(60)
		fn, _ := Easing("linear")
		done := 0
		id := Tween(s, 0.5, fn, func(float64) {}, func() { done++ })
		s.Update()
		s.Cancel(id)
		for i := 0; i < 40; i++ {
			s.Update()
		}
		if done != 0 {
			t.Errorf("done called %d times after cancel, want 0", done)
		}
	})
}

package scripting

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"go.uber.org/zap/zaptest"
)

func TestDamage(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		impact    float64
		threshold float64
		want      float64
	}{
		{
			name:   "identity",
			script: `function impact_damage(impact, threshold) return impact end`,
			impact: 2.5, threshold: 0.2, want: 2.5,
		},
		{
			name:   "above threshold only",
			script: `function impact_damage(impact, threshold) return impact - threshold end`,
			impact: 1.2, threshold: 0.2, want: 1.0,
		},
		{
			name: "capped",
			script: `
local cap = 2
function impact_damage(impact, threshold)
  if API_VERSION ~= 1 then return 0 end
  return math.min(impact, cap)
end`,
			impact: 7, threshold: 0.2, want: 2,
		},
		{
			name:   "runtime error falls back to impact",
			script: `function impact_damage(impact, threshold) error("boom") end`,
			impact: 4, threshold: 0.2, want: 4,
		},
		{
			name:   "non-number falls back to impact",
			script: `function impact_damage(impact, threshold) return "lots" end`,
			impact: 3, threshold: 0.2, want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewDamageModel(tt.script, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("NewDamageModel: %v", err)
			}
			defer m.Close()

			got := m.Damage(tt.impact, tt.threshold)
			if d := got - tt.want; d > 1e-9 || d < -1e-9 {
				t.Errorf("Damage(%v, %v) = %v, want %v", tt.impact, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestDamageModelKeepsStateBetweenCalls(t *testing.T) {
	m, err := NewDamageModel(`
hits = 0
function impact_damage(impact, threshold)
  hits = hits + 1
  return hits
end`, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	for want := 1.0; want <= 3; want++ {
		if got := m.Damage(1, 0); got != want {
			t.Errorf("Damage call %v = %v", want, got)
		}
	}
}

func TestNewDamageModelErrors(t *testing.T) {
	if _, err := NewDamageModel(`x = 1`, nil); !errors.Is(err, ErrNoDamageFunc) {
		t.Errorf("missing function error = %v, want %v", err, ErrNoDamageFunc)
	}
	if _, err := NewDamageModel(`impact_damage = 3`, nil); !errors.Is(err, ErrNoDamageFunc) {
		t.Errorf("non-function global error = %v, want %v", err, ErrNoDamageFunc)
	}
	if _, err := NewDamageModel(`function impact_damage(`, nil); err == nil {
		t.Error("syntax error was accepted")
	}
}

func TestLoadDamageModel(t *testing.T) {
	fsys := fstest.MapFS{
		"scripts/damage.lua": {Data: []byte(`function impact_damage(impact, threshold) return impact * 2 end`)},
		"scripts/broken.lua": {Data: []byte(`return`)},
	}

	m, err := LoadDamageModel(fsys, "scripts/damage.lua", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("LoadDamageModel: %v", err)
	}
	defer m.Close()
	if got := m.Damage(1.5, 0.2); got != 3 {
		t.Errorf("Damage = %v, want 3", got)
	}

	if _, err := LoadDamageModel(fsys, "scripts/missing.lua", nil); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
	if _, err := LoadDamageModel(fsys, "scripts/broken.lua", nil); !errors.Is(err, ErrNoDamageFunc) {
		t.Errorf("broken script error = %v, want %v", err, ErrNoDamageFunc)
	}
}

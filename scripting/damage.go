package scripting

import (
	"errors"
	"fmt"
	"io/fs"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

const damageFunc = "impact_damage"

var ErrNoDamageFunc = errors.New("script does not define " + damageFunc)

// DamageModel runs a Lua impact_damage(impact, threshold) function to turn a
// hard enough hit into target damage.
// Single-goroutine access only (game loop).
type DamageModel struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewDamageModel loads a script from source.
func NewDamageModel(source string, log *zap.Logger) (*DamageModel, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load damage script: %w", err)
	}
	if vm.GetGlobal(damageFunc).Type() != lua.LTFunction {
		vm.Close()
		return nil, ErrNoDamageFunc
	}
	return &DamageModel{vm: vm, log: log}, nil
}

// LoadDamageModel reads the script at path from fsys.
func LoadDamageModel(fsys fs.FS, path string, log *zap.Logger) (*DamageModel, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read damage script %s: %w", path, err)
	}
	m, err := NewDamageModel(string(src), log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.log.Debug("loaded lua script", zap.String("file", path))
	return m, nil
}

// Damage calls impact_damage. Script errors and non-numeric results fall back
// to the impact itself.
func (m *DamageModel) Damage(impact, threshold float64) float64 {
	if err := m.vm.CallByParam(lua.P{
		Fn:      m.vm.GetGlobal(damageFunc),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(impact), lua.LNumber(threshold)); err != nil {
		m.log.Error("lua impact_damage error", zap.Error(err))
		return impact
	}

	result := m.vm.Get(-1)
	m.vm.Pop(1)

	n, ok := result.(lua.LNumber)
	if !ok {
		m.log.Error("lua impact_damage returned non-number", zap.String("type", result.Type().String()))
		return impact
	}
	return float64(n)
}

func (m *DamageModel) Close() {
	m.vm.Close()
}

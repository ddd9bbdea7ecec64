package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/prefabs"
)

// generatorScript is an optional tengo hook that nudges segment
// placement. The script receives the player position and segment index
// and writes an offset map to __out.
type generatorScript struct {
	name     string
	compiled *tengo.Compiled
}

func loadGeneratorScript(name string) (*generatorScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	for _, v := range []string{"__x", "__y", "__z"} {
		if err := script.Add(v, 0.0); err != nil {
			return nil, fmt.Errorf("script %s: declare %s: %w", name, v, err)
		}
	}
	if err := script.Add("__index", 0); err != nil {
		return nil, fmt.Errorf("script %s: declare __index: %w", name, err)
	}
	if err := script.Add("__out", map[string]interface{}{}); err != nil {
		return nil, fmt.Errorf("script %s: declare __out: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script %s: %w", name, err)
	}
	return &generatorScript{name: name, compiled: compiled}, nil
}

func (gs *generatorScript) placementOffset(playerPos common.Vec3, index int) (common.Vec3, error) {
	run := gs.compiled.Clone()
	if err := run.Set("__x", playerPos.X); err != nil {
		return common.Vec3{}, err
	}
	if err := run.Set("__y", playerPos.Y); err != nil {
		return common.Vec3{}, err
	}
	if err := run.Set("__z", playerPos.Z); err != nil {
		return common.Vec3{}, err
	}
	if err := run.Set("__index", index); err != nil {
		return common.Vec3{}, err
	}
	if err := run.Run(); err != nil {
		return common.Vec3{}, fmt.Errorf("script %s: %w", gs.name, err)
	}

	out := run.Get("__out").Map()
	return common.Vec3{
		X: floatFrom(out, "offset_x"),
		Y: floatFrom(out, "offset_y"),
		Z: floatFrom(out, "offset_z"),
	}, nil
}

func floatFrom(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

package bastion

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// scriptStep is one action of an input script.
type scriptStep struct {
	Action string   `yaml:"action"`
	Keys   []string `yaml:"keys,omitempty"`
	X      float64  `yaml:"x,omitempty"`
	Y      float64  `yaml:"y,omitempty"`
	FromX  float64  `yaml:"from_x,omitempty"`
	FromY  float64  `yaml:"from_y,omitempty"`
	ToX    float64  `yaml:"to_x,omitempty"`
	ToY    float64  `yaml:"to_y,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
}

type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// LoadInputScript parses a YAML (or JSON) input script into a ScriptedInput
// with every frame queued. Actions: keys, press, move, release, click, drag
// and wait. A wait repeats the previous frame Frames times.
//
//	steps:
//	  - {action: keys, keys: [E]}
//	  - {action: keys}
//	  - {action: drag, from_x: 40, from_y: 40, to_x: 90, to_y: 40, frames: 4}
func LoadInputScript(data []byte) (*ScriptedInput, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("bastion: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("bastion: parse input script: no steps")
	}

	in := NewScriptedInput()
	for i, st := range script.Steps {
		switch st.Action {
		case "keys":
			keys := make([]ebiten.Key, 0, len(st.Keys))
			for _, name := range st.Keys {
				var k ebiten.Key
				if err := k.UnmarshalText([]byte(name)); err != nil {
					return nil, fmt.Errorf("bastion: input script step %d: %w", i, err)
				}
				keys = append(keys, k)
			}
			in.InjectKeys(keys...)
		case "press":
			in.InjectPress(st.X, st.Y)
		case "move":
			in.InjectMove(st.X, st.Y)
		case "release":
			in.InjectRelease(st.X, st.Y)
		case "click":
			in.InjectClick(st.X, st.Y)
		case "drag":
			in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		case "wait":
			for range st.Frames {
				in.Push(in.tail())
			}
		default:
			return nil, fmt.Errorf("bastion: input script step %d: unknown action %q", i, st.Action)
		}
	}
	return in, nil
}

package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type builtin struct {
	info  SceneInfo
	build func() *Scene
}

var builtins = map[string]builtin{
	"default": {
		info:  SceneInfo{Name: "default", Description: "ivory, glass, rubber and mirror spheres over a checkerboard"},
		build: NewDefaultScene,
	},
	"primitives": {
		info:  SceneInfo{Name: "primitives", Description: "the default layout with two spheres replaced by boxes"},
		build: NewPrimitivesScene,
	},
	"empty": {
		info:  SceneInfo{Name: "empty", Description: "no primitives, lights or ground; background only"},
		build: NewEmptyScene,
	},
}

// New builds the built-in scene with the given name
func New(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(), nil
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

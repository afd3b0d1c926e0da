package archetypes

import (
	"github.com/automoto/cursorfx/components"
	cfg "github.com/automoto/cursorfx/config"
	"github.com/automoto/cursorfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Element = newArchetype(
		tags.Element,
		components.Element,
		components.Intro,
	)
	Hoverable = newArchetype(
		tags.Element,
		tags.Hoverable,
		components.Element,
		components.Intro,
	)
	Bounds = newArchetype(
		tags.Bounds,
		components.Bounds,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Page = newArchetype(
		components.Page,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerPage,
		append(a.components, cs...)...,
	))
	return e
}

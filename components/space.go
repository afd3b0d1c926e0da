package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the collision space holding one object per bounds entity,
// plus the 1x1 pointer object moved for hit tests.
type SpaceData struct {
	*resolv.Space
	Pointer *resolv.Object
}

var Space = donburi.NewComponentType[SpaceData]()

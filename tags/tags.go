package tags

import "github.com/yohamta/donburi"

var (
	Element   = donburi.NewTag().SetName("Element")
	Hoverable = donburi.NewTag().SetName("Hoverable")
	Bounds    = donburi.NewTag().SetName("Bounds")
	Cursor    = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for hit testing
const (
	ResolvBounds  = "bounds"
	ResolvPointer = "pointer"
)

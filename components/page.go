package components

import (
	"github.com/automoto/cursorfx/shared/layout"
	"github.com/automoto/cursorfx/shared/pagedata"
	"github.com/yohamta/donburi"
)

type PageData struct {
	Page   *pagedata.Page
	Layout *layout.Layout
}

var Page = donburi.NewComponentType[PageData]()

package components

import (
	"github.com/automoto/familiar/target"
	"github.com/yohamta/donburi"
)

type TargetData struct {
	Source target.Source
}

var Target = donburi.NewComponentType[TargetData]()

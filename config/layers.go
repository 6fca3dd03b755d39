package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every entity and renderer lives on.
var Default = ecs.LayerDefault

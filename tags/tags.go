package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Enemy    = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvHitbox = "Hitbox"
)

package common

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	BodyWidth  = 32
	BodyHeight = 32

	// SpawnX/SpawnY is where the body starts.
	SpawnX = 100
	SpawnY = 300
)

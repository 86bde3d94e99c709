package game

// Viewport dimensions (in world pixels). World units map 1:1 to window
// pixels at zoom 1; the camera fits the full viewport to the framebuffer.
const (
	ViewportW = 800.0
	ViewportH = 600.0
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Spawning.
const (
	SpawnInterval = 0.8  // seconds between successful spawns
	MaxBubbles    = 18   // live population cap
	SeedBubbles   = 10   // pre-seeded in-viewport at session start
	SpawnBelowMin = 10.0 // spawn offset below the bottom edge
	SpawnBelowMax = 60.0
)

// Bubble motion ranges, sampled per entity at spawn.
const (
	RadiusMin     = 7.0
	RadiusMax     = 22.0
	RiseSpeedMin  = 25.0 // upward px/s (applied as negative vy)
	RiseSpeedMax  = 60.0
	DriftSpeedMax = 18.0 // |vx| px/s
	WobbleSpdMin  = 0.8  // rad/s
	WobbleSpdMax  = 2.4
	WobbleAmpMin  = 4.0 // px
	WobbleAmpMax  = 14.0
	HueMin        = 0.0 // degrees
	HueMax        = 360.0
)

// Bubble physics.
const (
	WallDamping = 0.8 // vx retained after a wall reflection
	DespawnY    = 0.0 // despawn once y+radius rises past this line
	BreatheAmp  = 0.03
	BreatheFreq = 1.6 // rad/s, shared; phase is per entity
)

// Scoring.
const (
	ScoreBaseK     = 800.0 // base points = round(K / radius)
	StreakWindow   = 1.2   // seconds between pops to keep a streak
	StreakCap      = 10
	ComboMinStreak = 3 // first streak that carries a tier label
)

// Particles.
const (
	MaxParticles      = 4000
	MaxParticleRender = 6000
)

// Ambient motes.
const (
	MoteRate = 2.5 // spawns per second
	MoteMax  = 120
)

// Pixel font layout (5x7 glyphs rendered as point sprites).
const (
	FontGlyphW = 5
	FontGlyphH = 7
)

// HUD presentation.
const (
	ComboBannerTime = 1.1  // seconds a combo label stays on screen
	FloaterTime     = 0.9  // seconds a score floater lives
	FloaterRise     = 26.0 // floater upward speed, px/s
)

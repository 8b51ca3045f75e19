package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/wave.yaml
var defaultWaveYAML []byte

// Default returns the built-in configuration. A spray's cosine arc
// completes at pi seconds, which is where its lifetime comes from.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:     0.0009,
			JumpImpulse: -0.03,
			SeaLevel:    0.8,
		},
		Boat: Boat{
			X:     0.1,
			Width: 0.2,
		},
		Obstacles: Obstacles{
			WaveSpeed:     0.4,
			SprayWidth:    0.4,
			SprayLifetime: math.Pi,
			PelicanSpeed:  0.8,
			PelicanWidth:  0.2,
			PelicanY:      0.05,
			FlapPeriod:    0.25,
		},
		Spawner: Spawner{
			MinInterval: 1.0,
			MaxInterval: 3.0,
		},
	}
}

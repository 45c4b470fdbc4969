package config

// DrawConfig controls the team draw engine.
type DrawConfig struct {
	MaxAttempts int
	// Seed pins the random source for reproducible draws. Zero means
	// seed from entropy on every process start.
	Seed int64
}

func loadDraw() DrawConfig {
	return DrawConfig{
		MaxAttempts: intEnvOrDefault(envDrawMaxAttempts, defaultDrawMaxAttempts),
		Seed:        int64Env(envDrawSeed),
	}
}

package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	PlayersFile     string
	DrawSheetFile   string
	RefreshEnabled  bool
	RefreshInterval Duration
	AdminToken      string
	CORSOrigins     []string
	Draw            DrawConfig
	TextGen         TextGenConfig
	Snapshots       SnapshotConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		PlayersFile:     envOrDefault(envPlayersFile, defaultPlayersFile),
		DrawSheetFile:   envOrDefault(envDrawSheetFile, defaultDrawSheetFile),
		RefreshEnabled:  boolEnvOrDefault(envRefreshEnabled, true),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		AdminToken:      envOrDefault(envAdminToken, ""),
		CORSOrigins:     csvEnv(envCORSOrigins),
		Draw:            loadDraw(),
		TextGen:         loadTextGen(),
		Snapshots:       loadSnapshots(),
		Metrics:         loadMetrics(),
	}
}

package config

import "time"

const (
	envPort              = "PORT"
	envPlayersFile       = "PLAYERS_FILE"
	envDrawSheetFile     = "DRAW_SHEET_FILE"
	envRefreshEnabled    = "REFRESH_ENABLED"
	envRefreshInterval   = "REFRESH_INTERVAL"
	envDrawMaxAttempts   = "DRAW_MAX_ATTEMPTS"
	envDrawSeed          = "DRAW_SEED"
	envTextGenProvider   = "TEXTGEN_PROVIDER"
	envTextGenTimeout    = "TEXTGEN_TIMEOUT"
	envTextGenRetries    = "TEXTGEN_MAX_RETRIES"
	envGeminiAPIKey      = "GEMINI_API_KEY"
	envGeminiModel       = "GEMINI_MODEL"
	envSnapshotFolder    = "SNAPSHOT_FOLDER"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"
	envAdminToken        = "ADMIN_TOKEN"
	envCORSOrigins       = "CORS_ORIGINS"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort          = "5000"
	defaultPlayersFile   = "players.json"
	defaultDrawSheetFile = "draw.json"
	// Roster and ranking inputs change at most a few times per week, so a
	// relaxed refresh cadence is plenty.
	defaultRefreshInterval = 15 * Duration(time.Minute)
	defaultDrawMaxAttempts = 50
	defaultTextGenProvider = "gemini"
	defaultTextGenTimeout  = 10 * Duration(time.Second)
	defaultTextGenRetries  = 2
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultSnapshotFolder  = "data/snapshots"
	// Draw archives older than this are pruned on the next write.
	defaultSnapshotRetention = 30
	defaultMetricsPort       = "9090"
	defaultServiceName       = "galacticos-ranking"
)

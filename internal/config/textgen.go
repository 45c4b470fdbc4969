package config

// TextGenConfig controls how award flavor phrases are generated.
type TextGenConfig struct {
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      Duration
	MaxRetries   int
}

func loadTextGen() TextGenConfig {
	return TextGenConfig{
		Provider:     envOrDefault(envTextGenProvider, defaultTextGenProvider),
		GeminiAPIKey: envOrDefault(envGeminiAPIKey, ""),
		GeminiModel:  envOrDefault(envGeminiModel, defaultGeminiModel),
		Timeout:      durationEnvOrDefault(envTextGenTimeout, defaultTextGenTimeout),
		MaxRetries:   intEnvOrDefault(envTextGenRetries, defaultTextGenRetries),
	}
}

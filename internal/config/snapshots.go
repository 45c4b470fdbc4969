package config

// SnapshotConfig controls where draw archives and rendered ranking
// artifacts are written, and how long dated archives are kept.
type SnapshotConfig struct {
	Folder        string
	RetentionDays int
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Folder:        envOrDefault(envSnapshotFolder, defaultSnapshotFolder),
		RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
	}
}

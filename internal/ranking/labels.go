package ranking

// Category keys as they appear in the league export. Awards are
// counted per match by the league app; the total* keys are season
// aggregates.
const (
	KeyCraque     = "craque"
	KeyArtilheiro = "artilheiro"
	KeyGarcom     = "garcom"
	KeyMuralha    = "muralha"
	KeyPereba     = "pereba"
	KeyBolaMurcha = "bolaMurcha"
	KeyXerifao    = "xerifao"
	KeyGoals      = "totalGoals"
	KeyAssists    = "totalAssistence"
	KeyGames      = "totalGamePlayed"
	KeyWins       = "totalWins"
	KeyDefeats    = "totalDefeat"
	KeyDraws      = "totalDraw"
)

// GoalkeeperPrefix marks the match-stat categories tracked separately
// for goalkeepers.
const GoalkeeperPrefix = "goleiro_"

// awardKeys are the per-match award categories. Goalkeepers never
// appear in these.
var awardKeys = []string{
	KeyCraque,
	KeyArtilheiro,
	KeyGarcom,
	KeyMuralha,
	KeyPereba,
	KeyBolaMurcha,
	KeyXerifao,
}

// matchKeys are the season match stats, split per goalkeeper status.
var matchKeys = []string{KeyGames, KeyWins, KeyDefeats, KeyDraws}

// generalKeys are season stats shared by everyone.
var generalKeys = []string{KeyGoals, KeyAssists}

var displayNames = map[string]string{
	KeyGarcom:                     "Garçom",
	KeyArtilheiro:                 "Artilheiro",
	KeyCraque:                     "Craque",
	KeyMuralha:                    "Muralha",
	KeyBolaMurcha:                 "Bola Murcha",
	KeyXerifao:                    "Xerifão",
	KeyPereba:                     "Pereba",
	KeyAssists:                    "Assistências",
	KeyGoals:                      "Gols",
	KeyGames:                      "Partidas Jogadas",
	KeyWins:                       "Vitórias",
	KeyDefeats:                    "Derrotas",
	KeyDraws:                      "Empates",
	GoalkeeperPrefix + KeyGames:   "Partidas (Goleiros)",
	GoalkeeperPrefix + KeyWins:    "Vitórias (Goleiros)",
	GoalkeeperPrefix + KeyDefeats: "Derrotas (Goleiros)",
	GoalkeeperPrefix + KeyDraws:   "Empates (Goleiros)",
}

var icons = map[string]string{
	KeyGarcom:                     "🍽️",
	KeyArtilheiro:                 "⚽",
	KeyCraque:                     "⭐",
	KeyMuralha:                    "🛡️",
	KeyBolaMurcha:                 "😞",
	KeyXerifao:                    "👮",
	KeyPereba:                     "🤦",
	KeyAssists:                    "🎯",
	KeyGoals:                      "⚽",
	KeyGames:                      "🎮",
	KeyWins:                       "🏆",
	KeyDefeats:                    "😔",
	KeyDraws:                      "🤝",
	GoalkeeperPrefix + KeyGames:   "🥅",
	GoalkeeperPrefix + KeyWins:    "🥅",
	GoalkeeperPrefix + KeyDefeats: "🥅",
	GoalkeeperPrefix + KeyDraws:   "🥅",
}

// DisplayName returns the human label for a category key. Unknown
// keys fall back to the key itself with the first letter upcased.
func DisplayName(key string) string {
	if name, ok := displayNames[key]; ok {
		return name
	}
	if key == "" {
		return key
	}
	return capitalize(key)
}

// Icon returns the emoji shown for a category key.
func Icon(key string) string {
	if icon, ok := icons[key]; ok {
		return icon
	}
	return "🏆"
}

func capitalize(s string) string {
	runes := []rune(s)
	if runes[0] >= 'a' && runes[0] <= 'z' {
		runes[0] = runes[0] - 'a' + 'A'
	}
	return string(runes)
}

package mongoexport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const shellDump = `/* sample export */
{
    "_id": ObjectId("64a1f0c2e4b0a1b2c3d4e5f6"),
    "fullName": "Bruno Silva",
    "position": "zagueiro",
    "teamCode": "GAL",
    "createdAt": ISODate("2024-03-01T12:00:00Z"),
    "includedTeams": [
        {
            "teamCode": "GAL",
            "totalGoals": NumberInt(7),
            "totalWins": "12",
            "awards": { "craque": NumberInt(3), "pereba": "x" }
        }
    ]
}
{
    "fullName": "Rafa {Ponta}",
    "position": "atacante",
    "teamCode": "GAL",
    "includedTeams": []
}
{
    "broken": true,
`

func parseString(t *testing.T, dump string) []PlayerDoc {
	t.Helper()
	docs, err := Parse(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	return docs
}

func TestParseShellDump(t *testing.T) {
	docs := parseString(t, shellDump)

	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].FullName != "Bruno Silva" {
		t.Fatalf("expected Bruno Silva, got %q", docs[0].FullName)
	}
	if docs[1].FullName != "Rafa {Ponta}" {
		t.Fatalf("expected braces inside strings to be ignored, got %q", docs[1].FullName)
	}

	season, ok := docs[0].CurrentSeason()
	if !ok {
		t.Fatal("expected a current season for Bruno")
	}
	if season.TotalGoals.Int() != 7 {
		t.Fatalf("expected NumberInt unwrapped to 7, got %d", season.TotalGoals.Int())
	}
	if season.TotalWins.Int() != 12 {
		t.Fatalf("expected quoted number coerced to 12, got %d", season.TotalWins.Int())
	}
	if season.Awards["craque"].Int() != 3 {
		t.Fatalf("expected craque award 3, got %d", season.Awards["craque"].Int())
	}
	if season.Awards["pereba"].Int() != 0 {
		t.Fatalf("expected garbage award coerced to 0, got %d", season.Awards["pereba"].Int())
	}
}

func TestParseSkipsUnnamedObjects(t *testing.T) {
	dump := `{"position": "ataca"}
{"fullName": "Leo", "teamCode": "GAL"}`

	docs := parseString(t, dump)

	if len(docs) != 1 || docs[0].FullName != "Leo" {
		t.Fatalf("expected only the named document, got %+v", docs)
	}
}

func TestParseArrayFallback(t *testing.T) {
	dump := `[{"fullName": "A"}, {"fullName": "B"}]`

	docs := parseString(t, dump)

	if len(docs) != 2 {
		t.Fatalf("expected array fallback to yield 2 docs, got %d", len(docs))
	}
}

func TestParseSingleLineObject(t *testing.T) {
	dump := ` {"fullName": "Solo", "teamCode": "GAL"} `

	docs := parseString(t, dump)

	if len(docs) != 1 || docs[0].FullName != "Solo" {
		t.Fatalf("expected one document, got %+v", docs)
	}
}

func TestParseUnnamedSingleObjectFallback(t *testing.T) {
	// The line scan keeps only named documents; a lone unnamed object
	// still comes back through the whole-payload fallback.
	docs := parseString(t, `{"position": "meia"}`)

	if len(docs) != 1 || docs[0].FullName != "" {
		t.Fatalf("expected unnamed doc via fallback, got %+v", docs)
	}
}

func TestParseGarbageYieldsNothing(t *testing.T) {
	if docs := parseString(t, "not json at all"); docs != nil {
		t.Fatalf("expected nil for garbage input, got %+v", docs)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "players.json")
	if err := os.WriteFile(path, []byte(`{"fullName": "Disk"}`+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	docs, err := ParseFile(path)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if len(docs) != 1 || docs[0].FullName != "Disk" {
		t.Fatalf("expected doc from disk, got %+v", docs)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// Package renderer turns a ranking board into the static awards page.
package renderer

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"unicode"

	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/ranking"
	"github.com/galacticos-fc/ranking-service/internal/textgen"
)

// Each category shows the champion plus the podium below.
const podiumSize = 3

var medals = [podiumSize]string{"🥇", "🥈", "🥉"}

var page = template.Must(template.New("ranking").Parse(pageTemplate))

// Renderer builds the self-contained ranking page from a board.
type Renderer struct {
	phrases textgen.Provider
	logger  *slog.Logger
}

func New(phrases textgen.Provider, logger *slog.Logger) *Renderer {
	return &Renderer{phrases: phrases, logger: logger}
}

type pageData struct {
	GeneratedAt string
	PlayerCount int
	Categories  []categoryView
}

type categoryView struct {
	Key      string
	Name     string
	Icon     string
	Champion championView
	Rows     []rowView
}

type championView struct {
	Name    string
	Image   string
	Initial string
	Phrase  string
	Profile string
}

type rowView struct {
	Medal    string
	Name     string
	Quantity int
}

// Render produces the full HTML page for the board.
func (r *Renderer) Render(ctx context.Context, board domainranking.Board) ([]byte, error) {
	data := pageData{
		GeneratedAt: board.GeneratedAt.Format("02/01/2006 15:04"),
		PlayerCount: len(board.Players),
		Categories:  make([]categoryView, 0, len(board.Categories)),
	}

	for _, cat := range board.Categories {
		data.Categories = append(data.Categories, r.buildCategory(ctx, board, cat))
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) buildCategory(ctx context.Context, board domainranking.Board, cat domainranking.Category) categoryView {
	view := categoryView{Key: cat.Key, Name: cat.Name, Icon: cat.Icon}

	champion, ok := cat.Champion()
	if !ok {
		return view
	}

	view.Champion = championView{
		Name:    champion.Player,
		Image:   board.Images[champion.Player],
		Initial: initialOf(champion.Player),
		Phrase:  r.praise(ctx, cat, champion),
		Profile: profileOf(board, champion.Player),
	}

	for i, entry := range cat.Entries {
		if i == podiumSize {
			break
		}
		view.Rows = append(view.Rows, rowView{
			Medal:    medals[i],
			Name:     entry.Player,
			Quantity: entry.Quantity,
		})
	}
	return view
}

func (r *Renderer) praise(ctx context.Context, cat domainranking.Category, champion domainranking.Entry) string {
	if r.phrases == nil {
		return ""
	}
	phrase, err := r.phrases.Generate(ctx, textgen.Request{
		Player:   champion.Player,
		Category: cat.Key,
		Label:    cat.Name,
		Value:    champion.Quantity,
	})
	if err != nil {
		// The provider chain fails closed, so this only happens with
		// bare providers injected in tests.
		logging.Warn(r.logger, "praise generation failed",
			slog.String(logging.FieldCategory, cat.Key), "error", err)
		return ""
	}
	return phrase
}

func profileOf(board domainranking.Board, player string) string {
	stats := board.PlayerStats(player)
	if len(stats) == 0 {
		return ""
	}
	return ranking.MatchProfile(stats).Name
}

func initialOf(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

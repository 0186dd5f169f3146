// Package ui holds the screens shown outside the match loop
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary is the end-of-match tally
type Summary struct {
	Score        int
	WinningScore int
	Won          bool
	Kills        int
	Hits         int
	ShotsFired   int
	Elapsed      time.Duration
}

// NewSummary collects the tally from a finished match
func NewSummary(state *engine.GameState) Summary {
	return Summary{
		Score:        state.Score,
		WinningScore: state.WinningScore,
		Won:          state.Won(),
		Kills:        state.Kills,
		Hits:         state.Hits,
		ShotsFired:   state.ShotsFired,
		Elapsed:      state.Elapsed,
	}
}

// Accuracy returns the share of shots that landed, zero when nothing was fired
func (s Summary) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

// Text renders the summary as the modal body
func (s Summary) Text() string {
	p := message.NewPrinter(language.English)

	title, msg := constants.LoseTitle, constants.LoseMessage
	if s.Won {
		title, msg = constants.WinTitle, constants.WinMessage
	}

	return p.Sprintf("%s\n%s\n\nScore: %d / %d\nKills: %d\nHits: %d of %d shots (%.0f%%)\nTime: %.1fs",
		title, msg,
		s.Score, s.WinningScore,
		s.Kills,
		s.Hits, s.ShotsFired, s.Accuracy()*100,
		s.Elapsed.Seconds())
}

// NewResultsModal builds the results dialog; done runs when a button is chosen
func NewResultsModal(s Summary, done func()) *tview.Modal {
	color := tcell.ColorIndianRed
	if s.Won {
		color = tcell.ColorGold
	}
	modal := tview.NewModal().
		SetText(s.Text()).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(int, string) {
			done()
		})
	modal.SetTextColor(color)
	return modal
}

// ShowResults runs the results dialog until dismissed
// screen must not be initialized yet; the application initializes it and finalizes it on close
func ShowResults(screen tcell.Screen, s Summary) error {
	app := tview.NewApplication().SetScreen(screen)
	modal := NewResultsModal(s, app.Stop)
	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return ev
	})
	return app.SetRoot(modal, false).Run()
}

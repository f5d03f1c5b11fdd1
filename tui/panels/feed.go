package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"botwars/internal/engine"
	"botwars/tui/styles"
)

const feedCapacity = 200

// FeedPanel is the scrolling tape of trade actions, taunts and events.
type FeedPanel struct {
	vp    viewport.Model
	lines []string
	width int
	ready bool
}

// NewFeedPanel creates an empty feed panel.
func NewFeedPanel() *FeedPanel {
	return &FeedPanel{}
}

// SetSize updates the panel's dimensions.
func (p *FeedPanel) SetSize(width, height int) {
	p.width = width
	inner := height - 3 // border + title
	if inner < 1 {
		inner = 1
	}
	if !p.ready {
		p.vp = viewport.New(width-4, inner)
		p.ready = true
	} else {
		p.vp.Width = width - 4
		p.vp.Height = inner
	}
	p.refresh()
}

// Append records the new snapshot's actions and event in the tape.
func (p *FeedPanel) Append(snap engine.Snapshot) {
	if snap.NewEvent != nil {
		ev := snap.NewEvent
		line := styles.Signed(
			fmt.Sprintf("⚡ %s: %s", ev.Name, ev.Description), ev.Impact)
		p.push(line)
	}
	for _, a := range snap.Actions {
		p.push(renderAction(a))
	}
	p.refresh()
}

func (p *FeedPanel) push(line string) {
	p.lines = append(p.lines, line)
	if len(p.lines) > feedCapacity {
		p.lines = p.lines[len(p.lines)-feedCapacity:]
	}
}

func (p *FeedPanel) refresh() {
	if !p.ready {
		return
	}
	p.vp.SetContent(strings.Join(p.lines, "\n"))
	p.vp.GotoBottom()
}

// Reset clears the tape for a new game.
func (p *FeedPanel) Reset() {
	p.lines = nil
	p.refresh()
}

// View renders the panel.
func (p *FeedPanel) View() string {
	if !p.ready {
		return ""
	}
	return styles.PanelStyle.Width(p.width).Render(
		styles.TitleStyle.Render("TAPE") + "\n" + p.vp.View())
}

func renderAction(a engine.ActionState) string {
	who := styles.BotStyle(a.BotColor).Render(a.BotIcon + " " + a.BotName)
	switch a.Action {
	case "BUY":
		return fmt.Sprintf("%s %s %s",
			who, styles.UpStyle.Render(fmt.Sprintf("BUY %d %s @ %.2f", a.Amount, a.Asset, a.Price)),
			styles.MutedStyle.Render(a.Commentary))
	case "SELL":
		return fmt.Sprintf("%s %s %s",
			who, styles.DownStyle.Render(fmt.Sprintf("SELL %d %s @ %.2f", a.Amount, a.Asset, a.Price)),
			styles.MutedStyle.Render(a.Commentary))
	case "TAUNT":
		return fmt.Sprintf("%s %s", who, styles.MutedStyle.Render("🗯 "+a.Commentary))
	case "SABOTAGE":
		return fmt.Sprintf("%s %s", who, styles.DownStyle.Render("😈 "+a.Commentary))
	default: // HOLD
		return fmt.Sprintf("%s %s", who, styles.MutedStyle.Render(a.Commentary))
	}
}

// Package tui is the terminal presentation of a game session: market and
// leaderboard panels, the action tape, and an awards screen at game over.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"botwars/internal/engine"
	"botwars/internal/game"
	"botwars/tui/panels"
	"botwars/tui/styles"
)

const autoplayInterval = 400 * time.Millisecond

type keyMap struct {
	Step    key.Binding
	Round   key.Binding
	Play    key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Step:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sub-tick")),
	Round:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "round")),
	Play:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "autoplay")),
	NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type autoplayMsg time.Time

// Model is the bubbletea application model.
type Model struct {
	session *game.Session

	market      *panels.MarketPanel
	leaderboard *panels.LeaderboardPanel
	feed        *panels.FeedPanel

	snap    engine.Snapshot
	playing bool
	width   int
	height  int
}

// NewModel creates the TUI model and starts the first game.
func NewModel(session *game.Session) *Model {
	m := &Model{
		session:     session,
		market:      panels.NewMarketPanel(),
		leaderboard: panels.NewLeaderboardPanel(),
		feed:        panels.NewFeedPanel(),
	}
	m.setSnapshot(session.NewGame())
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Step):
			m.step()
		case key.Matches(msg, keys.Round):
			m.stepRound()
		case key.Matches(msg, keys.NewGame):
			m.playing = false
			m.feed.Reset()
			m.setSnapshot(m.session.NewGame())
		case key.Matches(msg, keys.Play):
			m.playing = !m.playing
			if m.playing {
				return m, autoplayTick()
			}
		}

	case autoplayMsg:
		if m.playing && !m.snap.GameOver {
			m.step()
			return m, autoplayTick()
		}
		m.playing = false
	}
	return m, nil
}

func autoplayTick() tea.Cmd {
	return tea.Tick(autoplayInterval, func(t time.Time) tea.Msg {
		return autoplayMsg(t)
	})
}

func (m *Model) step() {
	snap, err := m.session.Tick()
	if err != nil {
		return
	}
	m.feed.Append(snap)
	m.setSnapshot(snap)
}

// stepRound advances to the next round boundary: at least one sub-tick,
// then as many as it takes for the sub-tick counter to wrap.
func (m *Model) stepRound() {
	m.step()
	for !m.snap.GameOver && m.snap.SubTick != 0 {
		m.step()
	}
}

func (m *Model) setSnapshot(snap engine.Snapshot) {
	m.snap = snap
	m.market.SetSnapshot(snap)
	m.leaderboard.SetSnapshot(snap)
}

func (m *Model) layout() {
	half := m.width / 2
	m.market.SetSize(half-1, 0)
	m.leaderboard.SetSize(m.width-half-1, 0)
	feedHeight := m.height - 22
	if feedHeight < 6 {
		feedHeight = 6
	}
	m.feed.SetSize(m.width-2, feedHeight)
}

// View renders the full screen.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.market.View(), m.leaderboard.View()))
	b.WriteString("\n")
	if m.snap.GameOver && m.snap.Awards != nil {
		b.WriteString(m.awardsView())
	} else {
		b.WriteString(m.feed.View())
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(
		"space: round • t: sub-tick • p: autoplay • n: new game • q: quit"))
	return b.String()
}

func (m *Model) statusBar() string {
	status := fmt.Sprintf("ROUND %d/%d", m.snap.Round, m.snap.TotalRounds)
	mood := styles.MoodStyle(m.snap.MarketMoodLabel).Render(
		fmt.Sprintf("MOOD %s (%.3f)", m.snap.MarketMoodLabel, m.snap.MarketMood))
	over := ""
	if m.snap.GameOver {
		over = styles.DownStyle.Render("  GAME OVER: " + m.snap.WinReason)
	}
	return styles.StatusBarStyle.Render("  BOT WARS  ") +
		styles.RowStyle.Render(status+"  ") + mood + over
}

func (m *Model) awardsView() string {
	a := m.snap.Awards
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("FINAL AWARDS"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "🏆 Champion:      %s %s  (net worth %.2f, P&L %+.2f)\n",
		a.Champion.Icon, a.Champion.Name, a.Champion.NetWorth, a.Champion.PnL)
	fmt.Fprintf(&b, "⚡ Most active:   %s %s  (%d trades)\n",
		a.MostActive.Icon, a.MostActive.Name, a.MostActive.Trades)
	fmt.Fprintf(&b, "🗯 Trash talker:  %s %s  (%d taunts)\n",
		a.TrashTalker.Icon, a.TrashTalker.Name, a.TrashTalker.Taunts)
	fmt.Fprintf(&b, "💰 Best trade:    %s %s  (%+.2f)\n",
		a.BestTrade.Icon, a.BestTrade.Name, a.BestTrade.PnL)
	fmt.Fprintf(&b, "💀 Worst trade:   %s %s  (%+.2f)\n",
		a.WorstTrade.Icon, a.WorstTrade.Name, a.WorstTrade.PnL)
	fmt.Fprintf(&b, "🪦 Biggest loser: %s %s  (P&L %+.2f)\n",
		a.BiggestLoser.Icon, a.BiggestLoser.Name, a.BiggestLoser.PnL)
	return styles.PanelStyle.Width(m.width - 2).Render(b.String())
}

package panels

import (
	"fmt"
	"strings"

	"botwars/internal/engine"
	"botwars/tui/styles"
)

// LeaderboardPanel ranks the bots by net worth.
type LeaderboardPanel struct {
	snap  engine.Snapshot
	width int
}

// NewLeaderboardPanel creates an empty leaderboard panel.
func NewLeaderboardPanel() *LeaderboardPanel {
	return &LeaderboardPanel{}
}

// SetSnapshot updates the panel's data.
func (p *LeaderboardPanel) SetSnapshot(snap engine.Snapshot) {
	p.snap = snap
}

// SetSize updates the panel's dimensions.
func (p *LeaderboardPanel) SetSize(width, _ int) {
	p.width = width
}

// View renders the panel.
func (p *LeaderboardPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-4s %-16s %12s %11s %7s %7s", "RANK", "BOT", "NET WORTH", "P&L", "TRADES", "TAUNTS")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, b := range p.snap.Bots {
		name := styles.BotStyle(b.Color).Render(fmt.Sprintf("%-16s", b.Icon+" "+b.Name))
		pnl := styles.Signed(fmt.Sprintf("%+11.2f", b.PnL), b.PnL)
		row := fmt.Sprintf("%-4d ", i+1)
		tail := fmt.Sprintf(" %12.2f ", b.NetWorth)
		content.WriteString(styles.RowStyle.Render(row) + name + styles.RowStyle.Render(tail) +
			pnl + styles.MutedStyle.Render(fmt.Sprintf(" %7d %7d", b.TradesMade, b.TauntsGiven)))
		content.WriteString("\n")
	}

	return styles.PanelStyle.Width(p.width).Render(
		styles.TitleStyle.Render("LEADERBOARD") + "\n" + content.String())
}

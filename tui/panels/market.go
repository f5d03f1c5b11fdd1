package panels

import (
	"fmt"
	"strings"

	"botwars/internal/engine"
	"botwars/tui/styles"
)

// MarketPanel displays the asset basket: price, move and active events.
type MarketPanel struct {
	snap  engine.Snapshot
	width int
}

// NewMarketPanel creates an empty market panel.
func NewMarketPanel() *MarketPanel {
	return &MarketPanel{}
}

// SetSnapshot updates the panel's data.
func (p *MarketPanel) SetSnapshot(snap engine.Snapshot) {
	p.snap = snap
}

// SetSize updates the panel's dimensions.
func (p *MarketPanel) SetSize(width, _ int) {
	p.width = width
}

// View renders the panel.
func (p *MarketPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-5s %-12s %12s %8s %6s", "SYM", "NAME", "PRICE", "MOVE", "VOL")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for _, sym := range p.snap.Symbols {
		a, ok := p.snap.Assets[sym]
		if !ok {
			continue
		}
		move := styles.Signed(fmt.Sprintf("%+7.2f%%", a.ChangePct), a.ChangePct)
		row := fmt.Sprintf("%-5s %-12s %12.2f ", a.Symbol, a.Name, a.Price)
		content.WriteString(styles.RowStyle.Render(row) + move +
			styles.MutedStyle.Render(fmt.Sprintf(" %6.2f", a.Volatility)))
		content.WriteString("\n")
	}

	if len(p.snap.ActiveEvents) > 0 {
		content.WriteString("\n")
		content.WriteString(styles.HeaderStyle.Render("ACTIVE EVENTS"))
		content.WriteString("\n")
		for _, ev := range p.snap.ActiveEvents {
			line := fmt.Sprintf("%s → %s (%+.0f%%, %d left)",
				ev.Name, ev.Target, ev.Impact*100, ev.Remaining)
			content.WriteString(styles.Signed(line, ev.Impact))
			content.WriteString("\n")
		}
	}

	return styles.PanelStyle.Width(p.width).Render(
		styles.TitleStyle.Render("MARKET") + "\n" + content.String())
}

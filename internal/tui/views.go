package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the whole dashboard: tab bar, active table with its detail
// pane, and the status bar.
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.viewTabs())

	if m.tab == tabStocks {
		if m.overview != nil {
			sections = append(sections, panelStyle.Render(m.viewOverview()))
		}
		sections = append(sections, panelStyle.Render(m.viewStocksTable()))
		if m.stockDetail != nil {
			sections = append(sections, panelStyle.Render(m.viewStockDetail()))
		}
	} else {
		sections = append(sections, panelStyle.Render(m.viewStartupsTable()))
		if m.startupDetail != nil {
			sections = append(sections, panelStyle.Render(m.viewStartupDetail()))
		}
	}

	sections = append(sections,
		statusLabelStyle.Render("STATUS: ")+statusStyle.Render(m.status),
		helpStyle.Render("1 stocks · 2 startups · ↑/↓ move · w watchlist · r refresh · q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	stocksLabel := "[1] Public Stocks"
	if m.watchlistOnly {
		stocksLabel = "[1] Public Stocks (watchlist)"
	}
	startupsLabel := "[2] Startup Signals"

	if m.tab == tabStocks {
		return tabActiveStyle.Render(stocksLabel) + tabStyle.Render(startupsLabel)
	}
	return tabStyle.Render(stocksLabel) + tabActiveStyle.Render(startupsLabel)
}

func (m Model) viewOverview() string {
	ov := m.overview
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Market Overview (as of %s)", ov.AsOf)),
	}
	for _, ix := range ov.Indices {
		lines = append(lines, fmt.Sprintf("%s: %.2f %s",
			ix.Name, ix.Value, changeStyle(ix.ChangePct).Render(fmt.Sprintf("(%+.2f%%)", ix.ChangePct))))
	}
	lines = append(lines,
		fmt.Sprintf("%d stocks tracked · avg %s · advance/decline %d / %d",
			ov.Count,
			changeStyle(ov.AvgChangePct).Render(fmt.Sprintf("%+.2f%%", ov.AvgChangePct)),
			ov.AdvanceDecline.Advances,
			ov.AdvanceDecline.Declines,
		),
	)
	for _, s := range ov.Sectors {
		lines = append(lines, fmt.Sprintf("  %-14s %s",
			s.Sector, changeStyle(s.AvgChangePct).Render(fmt.Sprintf("%+.2f%%", s.AvgChangePct))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewStocksTable() string {
	lines := []string{
		titleStyle.Render("Tracked Stocks"),
		headerRowStyle.Render(fmt.Sprintf("  %-12s %-28s %12s %9s %-6s %s",
			"Ticker", "Name", "Price", "Change", "Trend", "WL")),
	}
	if len(m.stocks) == 0 {
		lines = append(lines, mutedStyle.Render("  (no rows)"))
		return strings.Join(lines, "\n")
	}
	for i, s := range m.stocks {
		wl := ""
		if s.Watchlisted {
			wl = "*"
		}
		row := fmt.Sprintf("%-12s %-28s %12.2f %9s %-6s %s",
			s.Ticker, s.Name, s.Price,
			fmt.Sprintf("%+.2f%%", s.ChangePct), s.Trend, wl)
		if i == m.cursor {
			lines = append(lines, selectedRowStyle.Render("> "+row))
		} else {
			lines = append(lines, rowStyle.Render("  "+row))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewStockDetail() string {
	d := m.stockDetail
	values := make([]float64, 0, len(d.Series))
	for _, p := range d.Series {
		values = append(values, p.Price)
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s (%s)", d.Name, d.Ticker)),
		fmt.Sprintf("Sector: %s · Price: %.2f · Change: %s · Trend: %s",
			d.Sector, d.Price,
			changeStyle(d.ChangePct).Render(fmt.Sprintf("%+.2f%%", d.ChangePct)), d.Trend),
	}
	if len(values) > 0 {
		min, max := values[0], values[0]
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		lines = append(lines, fmt.Sprintf("Price trend: %s  [%.0f - %.0f]",
			statusStyle.Render(sparkline(values)), min, max))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewStartupsTable() string {
	lines := []string{
		titleStyle.Render("Startup Signals"),
		headerRowStyle.Render(fmt.Sprintf("  %-22s %-16s %-10s %s",
			"Name", "Sector", "Stage", "Signal")),
	}
	if len(m.startups) == 0 {
		lines = append(lines, mutedStyle.Render("  (no rows)"))
		return strings.Join(lines, "\n")
	}
	for i, s := range m.startups {
		row := fmt.Sprintf("%-22s %-16s %-10s %6.1f",
			s.Name, s.Sector, s.Stage, s.SignalScore)
		if i == m.cursor {
			lines = append(lines, selectedRowStyle.Render("> "+row))
		} else {
			lines = append(lines, rowStyle.Render("  "+row))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewStartupDetail() string {
	d := m.startupDetail
	hiring := make([]float64, 0, len(d.Momentum))
	buzz := make([]float64, 0, len(d.Momentum))
	for _, p := range d.Momentum {
		hiring = append(hiring, float64(p.Hiring))
		buzz = append(buzz, float64(p.Buzz))
	}

	lines := []string{
		titleStyle.Render(d.Name),
		fmt.Sprintf("Sector: %s · Stage: %s · Country: %s · Signal: %.1f",
			d.Sector, d.Stage, d.Country, d.SignalScore),
		mutedStyle.Render(d.Overview),
	}
	if len(d.Momentum) > 0 {
		lines = append(lines,
			fmt.Sprintf("Hiring: %s", statusStyle.Render(sparkline(hiring))),
			fmt.Sprintf("Buzz:   %s", statusStyle.Render(sparkline(buzz))),
		)
		for _, p := range d.Momentum {
			for _, ev := range p.Events {
				lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %s · %s", p.Month, ev)))
			}
		}
	}
	return strings.Join(lines, "\n")
}

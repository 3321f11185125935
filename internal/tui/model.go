// Package tui implements the terminal dashboard: two keyboard-navigable
// table views (stocks, startups) rendered over the data service API.
package tui

import (
	"context"
	"fmt"

	"market_terminal/internal/tui/client"

	tea "github.com/charmbracelet/bubbletea"
)

// tab identifies the active table view. The two tabs are mutually exclusive.
type tab int

const (
	tabStocks tab = iota
	tabStartups
)

// Messages delivered by the data-loading commands.
type (
	overviewMsg      client.Overview
	stocksMsg        []client.Stock
	startupsMsg      []client.Startup
	stockDetailMsg   client.StockDetail
	startupDetailMsg client.StartupDetail

	// fetchErrMsg reports a failed call. Rows already on screen are kept;
	// the error only surfaces in the status bar (no retry, no backoff).
	fetchErrMsg struct {
		scope string
		err   error
	}
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	api *client.Client

	tab           tab
	cursor        int
	watchlistOnly bool // stocks tab shows only watchlisted rows when set

	overview *client.Overview
	stocks   []client.Stock
	startups []client.Startup

	stockDetail   *client.StockDetail
	startupDetail *client.StartupDetail

	status string
	width  int
	height int
}

// NewModel creates the initial model: stocks tab active, cursor on row 0.
func NewModel(api *client.Client) Model {
	return Model{api: api, status: "Fetching data"}
}

// Init loads the overview and the initial stocks view.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadOverview(), m.loadStocks())
}

// rowCount returns the number of rows in the active table.
func (m Model) rowCount() int {
	if m.tab == tabStocks {
		return len(m.stocks)
	}
	return len(m.startups)
}

// clampCursor pins the cursor into [0, rowCount-1]; an empty table pins it to 0.
func (m *Model) clampCursor() {
	if max := m.rowCount() - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectDetail fetches the detail record for the currently selected row.
func (m Model) selectDetail() tea.Cmd {
	if m.rowCount() == 0 {
		return nil
	}
	if m.tab == tabStocks {
		return m.loadStockDetail(m.stocks[m.cursor].Ticker)
	}
	return m.loadStartupDetail(m.startups[m.cursor].ID)
}

// enterTab activates a tab, resets the cursor to row 0 and reloads the
// tab's rows wholesale. Switching tabs deliberately resets the selection:
// rows are replaced on entry, so a preserved index would point at nothing
// stable.
func (m *Model) enterTab(t tab) tea.Cmd {
	m.tab = t
	m.cursor = 0
	m.status = "Fetching data"
	if t == tabStocks {
		return tea.Batch(m.loadOverview(), m.loadStocks())
	}
	return m.loadStartups()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1":
			return m, m.enterTab(tabStocks)
		case "2":
			return m, m.enterTab(tabStartups)
		case "up", "k":
			m.cursor--
			m.clampCursor()
			return m, m.selectDetail()
		case "down", "j":
			m.cursor++
			m.clampCursor()
			return m, m.selectDetail()
		case "r":
			return m, m.enterTab(m.tab)
		case "w":
			if m.tab != tabStocks {
				return m, nil
			}
			m.watchlistOnly = !m.watchlistOnly
			m.cursor = 0
			m.status = "Fetching data"
			return m, m.loadStocks()
		}
		return m, nil

	case overviewMsg:
		ov := client.Overview(msg)
		m.overview = &ov
		return m, nil

	case stocksMsg:
		// A response that arrives after the user switched tabs is stale;
		// applying it would move status and detail against the wrong cursor.
		if m.tab != tabStocks {
			return m, nil
		}
		m.stocks = msg
		m.stockDetail = nil
		m.clampCursor()
		m.status = "Ready"
		return m, m.selectDetail()

	case startupsMsg:
		if m.tab != tabStartups {
			return m, nil
		}
		m.startups = msg
		m.startupDetail = nil
		m.clampCursor()
		m.status = "Ready"
		return m, m.selectDetail()

	case stockDetailMsg:
		d := client.StockDetail(msg)
		m.stockDetail = &d
		return m, nil

	case startupDetailMsg:
		d := client.StartupDetail(msg)
		m.startupDetail = &d
		return m, nil

	case fetchErrMsg:
		m.status = fmt.Sprintf("%s error: %v", msg.scope, msg.err)
		return m, nil
	}

	return m, nil
}

// Data-loading commands. Each blocks on one HTTP call; the client enforces
// the request timeout.

func (m Model) loadOverview() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ov, err := api.Overview(context.Background())
		if err != nil {
			return fetchErrMsg{scope: "Overview", err: err}
		}
		return overviewMsg(ov)
	}
}

func (m Model) loadStocks() tea.Cmd {
	api := m.api
	watchlistOnly := m.watchlistOnly
	return func() tea.Msg {
		var (
			rows []client.Stock
			err  error
		)
		if watchlistOnly {
			rows, err = api.Watchlist(context.Background())
		} else {
			rows, err = api.ListStocks(context.Background())
		}
		if err != nil {
			return fetchErrMsg{scope: "Stocks", err: err}
		}
		return stocksMsg(rows)
	}
}

func (m Model) loadStartups() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		rows, err := api.ListStartups(context.Background())
		if err != nil {
			return fetchErrMsg{scope: "Startups", err: err}
		}
		return startupsMsg(rows)
	}
}

func (m Model) loadStockDetail(ticker string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		d, err := api.GetStock(context.Background(), ticker)
		if err != nil {
			return fetchErrMsg{scope: "Stock " + ticker, err: err}
		}
		return stockDetailMsg(d)
	}
}

func (m Model) loadStartupDetail(id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		d, err := api.GetStartup(context.Background(), id)
		if err != nil {
			return fetchErrMsg{scope: "Startup " + id, err: err}
		}
		return startupDetailMsg(d)
	}
}

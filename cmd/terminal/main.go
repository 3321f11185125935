package main

import (
	"log"
	"os"

	"market_terminal/internal/tui"
	"market_terminal/internal/tui/client"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// API_BASE未設定時はデータサービスのデフォルトアドレスを使用
	api := client.New(os.Getenv("API_BASE"))

	p := tea.NewProgram(tui.NewModel(api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aryamadhavi03/githubs-pages/cmd"
	"github.com/aryamadhavi03/githubs-pages/internal/api"
	"github.com/aryamadhavi03/githubs-pages/internal/session"
	"github.com/aryamadhavi03/githubs-pages/internal/ui"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Detect terminal capabilities
	termCaps := ui.DetectTerminalCapabilities()

	// Open the local session store
	store, err := session.Open(config.SessionDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.New(config.APIBaseURL, store)

	// Create and run Bubble Tea app
	p := tea.NewProgram(ui.New(client, store, termCaps, config.Previews), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

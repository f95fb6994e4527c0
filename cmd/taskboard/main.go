// Package main provides the entry point for the TaskBoard TUI application.
//
// TaskBoard is a single-user kanban board in the terminal: three fixed
// columns, a small activity log, and a demo login. All state persists as
// JSON files under the configured data directory.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/demoapps/taskboard/internal/app"
	"github.com/demoapps/taskboard/internal/config"
	"github.com/demoapps/taskboard/internal/services/session"
	"github.com/demoapps/taskboard/internal/services/tasks"
	"github.com/demoapps/taskboard/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data directory: %v\n", err)
		os.Exit(1)
	}

	// Log to a file in the data dir; stdout belongs to the TUI
	logPath := filepath.Join(cfg.DataDir, "taskboard.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	tasksSvc := tasks.NewService(store, logger)
	tasksSvc.Load()

	sessionSvc := session.NewService(store, logger, time.Duration(cfg.LoginDelayMs)*time.Millisecond)
	sessionSvc.Restore()

	model := app.New(cfg, tasksSvc, sessionSvc, logger)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

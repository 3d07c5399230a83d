// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal browser of the e-diary
// client: list entry ids, write new entries and decrypt them with a key.
package tui

import (
	"context"

	"github.com/MKhiriev/secure-e-diary/internal/adapter"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter adapter.ServerAdapter
	copy    func(string) error
	logger  *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, copy: clipboard.WriteAll, logger: logger}
}

// Browse runs the full-screen browser until the user quits.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowseModel(ctx, t.adapter, t.copy)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(browseModel); !ok {
		return tea.ErrProgramKilled
	}

	t.logger.Debug().Msg("browser closed")
	return nil
}

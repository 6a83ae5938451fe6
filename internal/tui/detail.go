// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/neovault/neovault/models"
)

// detailModel renders a single entry. The secret content stays hidden until
// revealed and can be copied to the system clipboard.
type detailModel struct {
	name     string
	revealed bool
}

func (m detailModel) view(entry *models.Entry, status, errMsg string) string {
	if entry == nil {
		return renderPage("NeoVault", "entry not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("name       %s\n", entry.Name))
	b.WriteString(fmt.Sprintf("file path  %s\n", valueOrDash(entry.FilePath)))

	content := "-"
	if entry.Content != nil {
		content = "••••••••"
		if m.revealed {
			content = *entry.Content
		}
	}
	b.WriteString(fmt.Sprintf("content    %s\n", fitText(content, 64)))

	b.WriteString(fmt.Sprintf("created    %s\n", entry.CreatedAt))
	b.WriteString(fmt.Sprintf("modified   %s\n", entry.ModifiedAt))
	b.WriteString("\nmetadata\n")
	b.WriteString(renderMetadata(entry.Metadata))

	if status != "" {
		b.WriteString("\n\n" + statusStyle.Render(status))
	}
	if errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(errMsg))
	}

	return renderPage("Entry: "+m.name, b.String(), "r: reveal  c: copy  esc: back")
}

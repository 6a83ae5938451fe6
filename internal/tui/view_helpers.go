// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/neovault/neovault/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		if !strings.HasSuffix(data, "\n") {
			b.WriteString("\n")
		}
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return appStyle.Render(b.String())
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// renderMetadata renders a metadata map as sorted "key: value" lines.
func renderMetadata(metadata map[string]models.Value) string {
	if len(metadata) == 0 {
		return "-"
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("%s: %s\n", k, renderValue(metadata[k])))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderValue(v models.Value) string {
	switch v.Kind() {
	case models.KindString:
		s, _ := v.AsString()
		return s
	case models.KindBool:
		b, _ := v.AsBool()
		return fmt.Sprintf("%t", b)
	case models.KindNumber:
		n, _ := v.AsNumber()
		return fmt.Sprintf("%g", n)
	case models.KindList:
		elems, _ := v.AsList()
		parts := make([]string, 0, len(elems))
		for _, e := range elems {
			parts = append(parts, renderValue(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case models.KindMap:
		m, _ := v.AsMap()
		return renderMetadata(m)
	default:
		return "-"
	}
}

// parseMetadataPairs converts a "key=value, key2=value2" form field into a
// metadata map of string values. Empty input yields an empty map; a pair
// without "=" is skipped.
func parseMetadataPairs(raw string) map[string]models.Value {
	metadata := make(map[string]models.Value)

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		k, v, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		metadata[k] = models.String(strings.TrimSpace(v))
	}

	return metadata
}

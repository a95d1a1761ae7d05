// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts report markdown, with table support for the TRL
// distribution section.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// RenderHTML converts a rendered markdown report to an HTML fragment.
func RenderHTML(report string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(report), &buf); err != nil {
		return "", fmt.Errorf("converting report to HTML: %w", err)
	}
	return buf.String(), nil
}

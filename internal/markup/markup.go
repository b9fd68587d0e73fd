// Package markup extracts text and accent color from the inline color tags
// used in game narrative fields, e.g. <color name=#d8d769>...</color>.
package markup

import (
	"regexp"
	"strconv"
)

// colorTag is anchored at the start only; anything after the first closing tag is dropped.
var colorTag = regexp.MustCompile(`^<color name=#([0-9a-fA-F]{6})>([\s\S]*?)</color>`)

// Result is plain text with an optional accent color.
type Result struct {
	Text     string
	Color    int
	HasColor bool
}

// Extract returns the tag body and its color when text starts with a color tag,
// otherwise the text unchanged and no color. A nil text yields an empty result.
// Hex digits of either case are accepted, although the game data only uses lower case.
func Extract(text *string) Result {
	if text == nil {
		return Result{}
	}

	m := colorTag.FindStringSubmatch(*text)
	if m == nil {
		return Result{Text: *text}
	}

	color, err := strconv.ParseInt(m[1], 16, 32)
	if err != nil {
		return Result{Text: *text}
	}

	return Result{
		Text:     m[2],
		Color:    int(color),
		HasColor: true,
	}
}

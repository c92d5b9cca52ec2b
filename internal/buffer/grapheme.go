package buffer

import "github.com/rivo/uniseg"

// Clusters returns the grapheme clusters of text in visual order.
// Rendering works in clusters so combining diacritics stay attached to
// their base character.
func Clusters(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the display width of text in terminal cells.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// ClusterAt returns the grapheme cluster covering rune offset ch of
// text, with the text before and after it. A cursor drawn on the
// returned cluster lands on the right cell even when ch points inside
// a base+combining sequence.
func ClusterAt(text string, ch int) (before, at, after string) {
	if text == "" {
		return "", "", ""
	}
	g := uniseg.NewGraphemes(text)
	runeIdx := 0
	for g.Next() {
		cluster := g.Str()
		n := len([]rune(cluster))
		if ch < runeIdx+n {
			return before, cluster, text[len(before)+len(cluster):]
		}
		before += cluster
		runeIdx += n
	}
	return text, "", ""
}

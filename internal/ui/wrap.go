package ui

// Chunk hard-wraps s every width runes. Words are not kept together.
func Chunk(s string, width int) []string {
	rs := []rune(s)
	if width <= 0 || len(rs) <= width {
		return []string{s}
	}
	out := make([]string, 0, (len(rs)+width-1)/width)
	for len(rs) > width {
		out = append(out, string(rs[:width]))
		rs = rs[width:]
	}
	if len(rs) > 0 {
		out = append(out, string(rs))
	}
	return out
}

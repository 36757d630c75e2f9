package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// titleCase converts an underscore-separated string to title case.
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Split(value, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

// wrapLines greedily wraps text to width and returns at most limit lines. The
// last line is truncated when text remains.
func wrapLines(text string, width, limit int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 || limit <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	for i, w := range words {
		switch {
		case cur.Len() == 0:
			cur.WriteString(w)
		case len([]rune(cur.String()))+1+len([]rune(w)) <= width:
			cur.WriteByte(' ')
			cur.WriteString(w)
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			if len(lines) == limit {
				lines[limit-1] = truncate(lines[limit-1]+" "+strings.Join(words[i:], " "), width)
				return lines
			}
			cur.WriteString(w)
		}
	}
	lines = append(lines, truncate(cur.String(), width))
	return lines
}

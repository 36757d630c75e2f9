package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	colorize "github.com/fatih/color"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded JSON log line.
type Entry struct {
	Time    string
	Level   string
	Logger  string
	Message string
	Fields  map[string]any
}

// reserved keys are rendered in the line prefix rather than as fields.
var reserved = map[string]bool{"ts": true, "level": true, "logger": true, "msg": true, "caller": true}

// Parse decodes a JSON log line. ok is false for lines that are not JSON
// objects, which are shown verbatim.
func Parse(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	e := Entry{Fields: map[string]any{}}
	e.Time, _ = raw["ts"].(string)
	e.Level, _ = raw["level"].(string)
	e.Logger, _ = raw["logger"].(string)
	e.Message, _ = raw["msg"].(string)
	for k, v := range raw {
		if !reserved[k] {
			e.Fields[k] = v
		}
	}
	return e, true
}

// FormatLine renders a log line for the terminal. JSON lines become
// "time LEVEL [logger] message key=value ..." with fields sorted by key.
func FormatLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	e, ok := Parse(line)
	if !ok {
		return line
	}

	parts := make([]string, 0, 4+len(e.Fields))
	if e.Time != "" {
		parts = append(parts, colorize.New(colorize.FgHiBlack).Sprint(e.Time))
	}
	if e.Level != "" {
		parts = append(parts, levelColor(e.Level).Sprint(strings.ToUpper(e.Level)))
	}
	if e.Logger != "" {
		parts = append(parts, colorize.BlueString("[%s]", e.Logger))
	}
	parts = append(parts, e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, colorize.CyanString("%s=", k)+fmt.Sprint(e.Fields[k]))
	}
	return strings.Join(parts, " ")
}

// FormatLines formats every line.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = FormatLine(line)
	}
	return out
}

func levelColor(level string) *colorize.Color {
	switch strings.ToLower(level) {
	case "error", "dpanic", "panic", "fatal":
		return colorize.New(colorize.FgRed, colorize.Bold)
	case "warn":
		return colorize.New(colorize.FgYellow, colorize.Bold)
	case "debug":
		return colorize.New(colorize.FgHiCyan, colorize.Bold)
	default:
		return colorize.New(colorize.FgGreen, colorize.Bold)
	}
}

package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/planner/internal/config"
	"github.com/Iron-Ham/planner/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the client debug log",
	Long: `View and filter the planner debug log.

The TUI owns the terminal, so diagnostics are written as JSON lines to
planner.log in the log directory. This command pretty-prints them.

Examples:
  # Show the last 50 entries
  planner logs

  # Follow the log while using the TUI in another terminal
  planner logs -f

  # Only warnings and errors from the last hour
  planner logs --level warn --since 1h

  # Everything about one request or project
  planner logs --grep "request_id|3f2a"`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail   int
	logsFollow bool
	logsLevel  string
	logsSince  string
	logsGrep   string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Only entries newer than this duration (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Only entries matching this pattern (regex)")
}

// logEntry is one parsed JSON log line.
type logEntry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	ProjectID string         `json:"project_id,omitempty"`
	Extra     map[string]any `json:"-"`
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (e *logEntry) UnmarshalJSON(data []byte) error {
	type plain logEntry
	if err := json.Unmarshal(data, (*plain)(e)); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, known := range []string{"time", "level", "msg", "component", "project_id"} {
		delete(all, known)
	}
	if len(all) > 0 {
		e.Extra = all
	}
	return nil
}

// logFilter selects which entries are printed.
type logFilter struct {
	minLevel int
	since    time.Time
	pattern  *regexp.Regexp
}

func newLogFilter(level, since, grep string, now time.Time) (logFilter, error) {
	f := logFilter{minLevel: -1}

	if level != "" {
		upper := strings.ToUpper(level)
		if !slices.Contains(logging.ValidLevels(), upper) {
			return f, fmt.Errorf("invalid level: %s\nValid options: debug, info, warn, error", level)
		}
		f.minLevel = levelPriority(upper)
	}

	if since != "" {
		d, err := time.ParseDuration(since)
		if err != nil {
			return f, fmt.Errorf("invalid duration format: %w", err)
		}
		f.since = now.Add(-d)
	}

	if grep != "" {
		re, err := regexp.Compile(grep)
		if err != nil {
			return f, fmt.Errorf("invalid grep pattern: %w", err)
		}
		f.pattern = re
	}
	return f, nil
}

func (f logFilter) match(e *logEntry) bool {
	if f.minLevel >= 0 && levelPriority(e.Level) < f.minLevel {
		return false
	}
	if !f.since.IsZero() && e.Time.Before(f.since) {
		return false
	}
	if f.pattern != nil {
		text := strings.Join([]string{e.Msg, e.Component, e.ProjectID}, " ")
		for _, v := range e.Extra {
			text += " " + fmt.Sprint(v)
		}
		if !f.pattern.MatchString(text) {
			return false
		}
	}
	return true
}

func levelPriority(level string) int {
	return slices.Index(logging.ValidLevels(), strings.ToUpper(level))
}

var (
	logTimeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	logFieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	logLevelStyle = map[string]lipgloss.Style{
		logging.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		logging.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		logging.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		logging.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// formatLogEntry renders e as one line: time, level, component, message,
// then the remaining fields sorted by key.
func formatLogEntry(e *logEntry) string {
	var sb strings.Builder

	sb.WriteString(logTimeStyle.Render("[" + e.Time.Local().Format("15:04:05.000") + "]"))
	sb.WriteString(" ")
	level := strings.ToUpper(e.Level)
	sb.WriteString(logLevelStyle[level].Render("[" + level + "]"))
	if e.Component != "" {
		sb.WriteString(" " + logFieldStyle.Render(e.Component+":"))
	}
	sb.WriteString(" " + e.Msg)
	if e.ProjectID != "" {
		sb.WriteString(" " + logFieldStyle.Render("project_id=") + e.ProjectID)
	}

	keys := make([]string, 0, len(e.Extra))
	for k := range e.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(" " + logFieldStyle.Render(k+"=") + fmt.Sprint(e.Extra[k]))
	}
	return sb.String()
}

// formatLine parses and formats one raw line. Lines that are not JSON are
// passed through; ok is false when the entry is filtered out.
func formatLine(line string, f logFilter) (string, bool) {
	var e logEntry
	if err := json.Unmarshal([]byte(line), &e); err != nil {
		return line, true
	}
	if !f.match(&e) {
		return "", false
	}
	return formatLogEntry(&e), true
}

func runLogs(cmd *cobra.Command, args []string) error {
	logPath := filepath.Join(config.LogDir(), logging.LogFileName)
	out := cmd.OutOrStdout()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No logs found.")
		fmt.Fprintln(out, "Logs are stored at:", logPath)
		return nil
	}

	f, err := newLogFilter(logsLevel, logsSince, logsGrep, time.Now())
	if err != nil {
		return err
	}

	if logsFollow {
		return followLogs(out, logPath, f)
	}
	return displayLogs(out, logPath, logsTail, f)
}

// displayLogs prints the last tail matching entries of logPath.
func displayLogs(out io.Writer, logPath string, tail int, f logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		raw := scanner.Text()
		if raw == "" {
			continue
		}
		if line, ok := formatLine(raw, f); ok {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	if tail > 0 && len(lines) > tail {
		lines = lines[len(lines)-tail:]
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	if len(lines) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
	}
	return nil
}

// followLogs prints entries appended to logPath until interrupted.
func followLogs(out io.Writer, logPath string, f logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	fmt.Fprintf(out, "Following %s... (Ctrl+C to stop)\n\n", logPath)

	reader := bufio.NewReader(file)
	var partial string
	for {
		chunk, err := reader.ReadString('\n')
		partial += chunk
		if err == io.EOF {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading log file: %w", err)
		}

		raw := strings.TrimSpace(partial)
		partial = ""
		if raw == "" {
			continue
		}
		if line, ok := formatLine(raw, f); ok {
			fmt.Fprintln(out, line)
		}
	}
}

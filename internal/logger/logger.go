package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout

	tagColor     = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgMagenta)
	errorColor   = color.New(color.FgRed, color.Bold)
	sectionColor = color.New(color.FgCyan, color.Bold)
	keyColor     = color.New(color.FgHiWhite)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 2)
)

// SetOutput redirects all log output; it returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// Discard silences all output
func Discard() {
	SetOutput(io.Discard)
}

func line(c *color.Color, symbol, tag, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "%s %s %s\n", c.Sprint(symbol), tagColor.Sprintf("[%s]", tag), msg)
}

// Info logs a neutral progress message
func Info(tag, format string, args ...any) {
	line(infoColor, "•", tag, format, args...)
}

// Success logs a completed step
func Success(tag, format string, args ...any) {
	line(successColor, "✓", tag, format, args...)
}

// Warn logs a recoverable problem
func Warn(tag, format string, args ...any) {
	line(warnColor, "!", tag, format, args...)
}

// Error logs a failure
func Error(tag, format string, args ...any) {
	line(errorColor, "✗", tag, format, args...)
}

// Banner prints the boxed program title, with the version when known
func Banner(version string) {
	title := "Geode Build Order Solver"
	if version != "" {
		title += "\n" + version
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out)
	fmt.Fprintln(out, bannerStyle.Render(title))
	fmt.Fprintln(out)
}

// Section prints a section heading
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "\n%s\n", sectionColor.Sprint(name))
}

// Stats prints an indented key/value pair
func Stats(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "   %s %v\n", keyColor.Sprintf("%-18s", key+":"), value)
}

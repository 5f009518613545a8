// Package display provides terminal output formatting for trendfinder.
package display

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"trendfinder/internal/trend"
)

const (
	separator = " • "
	ruler     = "================================================================================"
)

// isoDuration matches ISO 8601 elapsed-time encodings such as PT1H2M10S.
var isoDuration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// TerminalFormatter formats ranked videos for terminal display.
type TerminalFormatter struct {
	printer *message.Printer
	now     func() time.Time
}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{
		printer: message.NewPrinter(language.English),
		now:     time.Now,
	}
}

// FormatResults formats a ranked result list for display.
func (f *TerminalFormatter) FormatResults(videos []trend.ScoredVideo) string {
	if len(videos) == 0 {
		return "\nNo trending videos found.\n"
	}

	var b strings.Builder
	b.WriteString("\n" + ruler + "\n")
	b.WriteString(fmt.Sprintf("Trending videos: %d\n", len(videos)))
	b.WriteString(ruler + "\n\n")

	for i, v := range videos {
		b.WriteString(f.FormatVideo(i+1, v))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatVideo formats a single ranked video.
func (f *TerminalFormatter) FormatVideo(rank int, v trend.ScoredVideo) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("%d. %s", rank, v.Title))
	lines = append(lines, fmt.Sprintf("   Channel: %s", v.ChannelTitle))
	lines = append(lines, fmt.Sprintf("   Views: %s%sLikes: %s",
		f.FormatCount(v.ViewCount), separator, f.FormatCount(v.LikeCount)))
	lines = append(lines, fmt.Sprintf("   Published: %s (%s)",
		v.PublishedAt.Format("Jan 2, 2006"), f.daysAgo(v.PublishedAt)))
	lines = append(lines, fmt.Sprintf("   Duration: %s", FormatDuration(v.Duration)))
	lines = append(lines, fmt.Sprintf("   Trending score: %.2f", v.TrendingScore))
	lines = append(lines, fmt.Sprintf("   %s", v.URL))

	return strings.Join(lines, "\n") + "\n"
}

// FormatCount renders a count with locale-aware thousands separators.
func (f *TerminalFormatter) FormatCount(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// daysAgo renders the whole-day age of a timestamp.
func (f *TerminalFormatter) daysAgo(t time.Time) string {
	days := int(f.now().Sub(t).Hours() / 24)
	if days < 0 {
		days = 0
	}
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

// FormatDuration converts an ISO 8601 duration such as PT1H2M10S into a
// human-readable string ("1 hour 2 minutes 10 seconds"). Zero components
// are omitted; an all-zero duration renders as "0 seconds". Input that
// does not parse is returned unchanged.
func FormatDuration(duration string) string {
	m := isoDuration.FindStringSubmatch(duration)
	if m == nil {
		return duration
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	var parts []string
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}
	if seconds > 0 {
		parts = append(parts, pluralize(seconds, "second"))
	}

	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, " ")
}

// pluralize returns "1 unit" or "N units" based on count.
func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

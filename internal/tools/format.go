package tools

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"netcores-mcp/internal/client"
)

// FormatterError marks a payload whose shape cannot be rendered. Retrying the
// remote call will not fix a shape mismatch, so it surfaces immediately.
type FormatterError struct {
	Reason string
}

func (e *FormatterError) Error() string {
	return "formatter error: " + e.Reason
}

func ipLabel(version int) string {
	switch version {
	case 4:
		return "IPv4"
	case 6:
		return "IPv6"
	default:
		return "unknown"
	}
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// trendWindow applies the tail-window rule: limit 0 shows everything, a
// positive limit keeps the most recent points from the end of the
// time-ordered sequence. The caption never claims truncation when all points
// fit.
func trendWindow(points []client.TrendPoint, limit int) ([]client.TrendPoint, string) {
	total := len(points)
	if limit <= 0 || limit >= total {
		return points, fmt.Sprintf("All %d data points shown", total)
	}
	return points[total-limit:], fmt.Sprintf("Most recent %d of %d data points", limit, total)
}

func writeTrendPoints(b *strings.Builder, points []client.TrendPoint, indent string) {
	for _, p := range points {
		fmt.Fprintf(b, "%s%s  coreness=%d  rank=%d  degree=%d\n",
			indent, orUnknown(p.Date), p.Coreness, p.Rank, p.Degree)
	}
}

func formatHealth(health *client.HealthStatus) (string, error) {
	if health == nil {
		return "", &FormatterError{Reason: "empty health payload"}
	}
	var b strings.Builder
	b.WriteString("netcores service health\n")
	fmt.Fprintf(&b, "  Status:  %s\n", orUnknown(health.Status))
	fmt.Fprintf(&b, "  Version: %s\n", orUnknown(health.Version))
	if len(health.Data) == 0 {
		b.WriteString("  Dataset status: unknown\n")
		return b.String(), nil
	}
	keys := make([]string, 0, len(health.Data))
	for k := range health.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ds := health.Data[k]
		fmt.Fprintf(&b, "  %s: %d snapshots, latest %s\n", k, ds.SnapshotCount, orUnknown(ds.LatestDate))
	}
	return b.String(), nil
}

func formatSummary(summary *client.Summary, ipVersion int) (string, error) {
	if summary == nil {
		return "", &FormatterError{Reason: "empty summary payload"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset summary (%s)\n", ipLabel(ipVersion))
	fmt.Fprintf(&b, "  Snapshots:    %d (%s to %s)\n",
		summary.SnapshotCount, orUnknown(summary.FirstDate), orUnknown(summary.LatestDate))
	fmt.Fprintf(&b, "  ASNs tracked: %d\n", summary.ASNCount)
	fmt.Fprintf(&b, "  Max k-core:   %d\n", summary.MaxCoreness)
	fmt.Fprintf(&b, "  Avg k-core:   %.2f\n", summary.AvgCoreness)
	return b.String(), nil
}

func formatTrend(series *client.TrendSeries, ipVersion, limit int) (string, error) {
	if series == nil {
		return "", &FormatterError{Reason: "empty trend payload"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "K-core trend for AS%d (%s) [%s]\n", series.ASN, orUnknown(series.Name), ipLabel(ipVersion))
	if len(series.Points) == 0 {
		b.WriteString("  No data points available\n")
		return b.String(), nil
	}
	window, caption := trendWindow(series.Points, limit)
	fmt.Fprintf(&b, "%s:\n", caption)
	writeTrendPoints(&b, window, "  ")
	return b.String(), nil
}

// formatCompare renders one section per requested ASN, in the caller's
// order, never in the order the service happened to key its response.
func formatCompare(result *client.CompareResult, order []int, ipVersion, limit int) (string, error) {
	if result == nil || result.Results == nil {
		return "", &FormatterError{Reason: "empty comparison payload"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "K-core comparison [%s] for %d ASNs\n", ipLabel(ipVersion), len(order))
	for _, asn := range order {
		series, ok := result.Results[strconv.Itoa(asn)]
		b.WriteString("\n")
		if !ok {
			fmt.Fprintf(&b, "AS%d (unknown)\n  No data returned for this ASN\n", asn)
			continue
		}
		fmt.Fprintf(&b, "AS%d (%s)\n", asn, orUnknown(series.Name))
		if len(series.Points) == 0 {
			b.WriteString("  No data points available\n")
			continue
		}
		window, caption := trendWindow(series.Points, limit)
		fmt.Fprintf(&b, "  %s:\n", caption)
		writeTrendPoints(&b, window, "    ")
	}
	return b.String(), nil
}

func formatSnapshots(list *client.SnapshotList, ipVersion int) (string, error) {
	if list == nil {
		return "", &FormatterError{Reason: "empty snapshot payload"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Available snapshots [%s]: %d total\n", ipLabel(ipVersion), len(list.Snapshots))
	if len(list.Snapshots) == 0 {
		b.WriteString("  No snapshots available\n")
		return b.String(), nil
	}
	headers := []string{"Date", "ASNs", "Edges", "Max k-core"}
	rows := make([][]string, 0, len(list.Snapshots))
	for _, snap := range list.Snapshots {
		rows = append(rows, []string{
			orUnknown(snap.Date),
			strconv.Itoa(snap.ASNCount),
			strconv.Itoa(snap.EdgeCount),
			strconv.Itoa(snap.MaxCoreness),
		})
	}
	writeTable(&b, headers, rows, "  ")
	return b.String(), nil
}

func formatRefresh(result *client.RefreshResult) (string, error) {
	if result == nil {
		return "", &FormatterError{Reason: "empty refresh payload"}
	}
	var b strings.Builder
	b.WriteString("Data refresh triggered\n")
	fmt.Fprintf(&b, "  Status:  %s\n", orUnknown(result.Status))
	fmt.Fprintf(&b, "  Message: %s\n", orNA(result.Message))
	fmt.Fprintf(&b, "  IP versions: %s\n", joinInts(result.IPVersions))
	return b.String(), nil
}

func formatScheduler(status *client.SchedulerStatus) (string, error) {
	if status == nil {
		return "", &FormatterError{Reason: "empty scheduler payload"}
	}
	enabled := "no"
	if status.Enabled {
		enabled = "yes"
	}
	interval := "N/A"
	if status.IntervalHours > 0 {
		interval = fmt.Sprintf("%dh", status.IntervalHours)
	}
	var b strings.Builder
	b.WriteString("Scheduler status\n")
	fmt.Fprintf(&b, "  Enabled:     %s\n", enabled)
	fmt.Fprintf(&b, "  Interval:    %s\n", interval)
	fmt.Fprintf(&b, "  Next run:    %s\n", orNA(status.NextRun))
	fmt.Fprintf(&b, "  Last run:    %s\n", orNA(status.LastRun))
	fmt.Fprintf(&b, "  Last result: %s\n", orUnknown(status.LastResult))
	return b.String(), nil
}

func formatUpdate(result *client.UpdateResult) (string, error) {
	if result == nil {
		return "", &FormatterError{Reason: "empty update payload"}
	}
	var b strings.Builder
	b.WriteString("Scheduler update triggered\n")
	fmt.Fprintf(&b, "  Status:  %s\n", orUnknown(result.Status))
	fmt.Fprintf(&b, "  Message: %s\n", orNA(result.Message))
	return b.String(), nil
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "N/A"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// writeTable pads columns by display width so CJK AS names and wide runes do
// not break alignment.
func writeTable(b *strings.Builder, headers []string, rows [][]string, indent string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	writeRow := func(cells []string) {
		b.WriteString(indent)
		for i, cell := range cells {
			if i == len(cells)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]+2))
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
}

// Package digest ranks stale PR records, renders them as numbered markdown
// lines and publishes the result to the step summary and step outputs.
package digest

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"stalepr/pkg/domain"
)

// Rank orders records by DaysStale, most stale first. It stable-sorts
// ascending and then reverses the whole slice, so records sharing a
// DaysStale value come out in reverse merge order. The input is not modified.
func Rank(records []domain.StaleRecord) []domain.StaleRecord {
	ranked := slices.Clone(records)
	slices.SortStableFunc(ranked, func(a, b domain.StaleRecord) int {
		return cmp.Compare(a.DaysStale, b.DaysStale)
	})
	slices.Reverse(ranked)

	return ranked
}

// FormatLine renders the record at 1-based position pos.
func FormatLine(pos int, r domain.StaleRecord) string {
	return fmt.Sprintf(" %d. [%s](%s) | %d days with no reviews", pos, r.Title, r.URL, r.DaysStale)
}

// Heading is the summary heading for total stale records.
func Heading(total int) string {
	return fmt.Sprintf("There are %d stale PRs", total)
}

// Build ranks records, keeps the first limit of them and formats the kept
// ones. Total always counts every record. A negative limit keeps nothing.
func Build(records []domain.StaleRecord, limit int) domain.Digest {
	ranked := Rank(records)
	kept := ranked[:max(0, min(limit, len(ranked)))]

	lines := make([]string, len(kept))
	for i, r := range kept {
		lines[i] = FormatLine(i+1, r)
	}

	return domain.Digest{
		Total:   len(records),
		Records: kept,
		Lines:   lines,
	}
}

// Message joins the digest lines into the multi-line MESSAGE payload.
func Message(d domain.Digest) string {
	return strings.Join(d.Lines, "\n")
}

// ParseLimit reads the optional limit argument. A missing, non-integer or
// non-positive argument yields def.
func ParseLimit(args []string, def int) int {
	if len(args) == 0 {
		return def
	}
	limit, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || limit <= 0 {
		return def
	}

	return limit
}

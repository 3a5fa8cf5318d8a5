package digest_test

import (
	"stalepr/internal/digest"
	"stalepr/pkg/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// defaultLimit mirrors STALE_PRS_DEFAULT_LIMIT's default.
const defaultLimit = 999

func rec(title string, days int) domain.StaleRecord {
	return domain.StaleRecord{Title: title, URL: "https://github.com/acme/repo/pull/" + title, DaysStale: days}
}

func titles(records []domain.StaleRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}

	return out
}

func TestRank(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.StaleRecord
		want  []string
	}{
		{
			name:  "empty",
			input: nil,
			want:  []string{},
		},
		{
			name:  "descending by days",
			input: []domain.StaleRecord{rec("a", 5), rec("b", 10), rec("c", 1)},
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "ties come out in reverse merge order",
			input: []domain.StaleRecord{rec("first", 5), rec("second", 5), rec("top", 10), rec("third", 5)},
			want:  []string{"top", "third", "second", "first"},
		},
		{
			name:  "all equal reverses input",
			input: []domain.StaleRecord{rec("a", 3), rec("b", 3), rec("c", 3)},
			want:  []string{"c", "b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(digest.Rank(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ranked order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	input := []domain.StaleRecord{rec("a", 1), rec("b", 2)}
	_ = digest.Rank(input)
	require.Equal(t, []string{"a", "b"}, titles(input))
}

func TestFormatLine(t *testing.T) {
	r := domain.StaleRecord{Title: "Add rate limiting", URL: "https://github.com/acme/gateway/pull/101", DaysStale: 14}
	require.Equal(t,
		" 3. [Add rate limiting](https://github.com/acme/gateway/pull/101) | 14 days with no reviews",
		digest.FormatLine(3, r))
}

func TestBuild_TwoReports(t *testing.T) {
	records := []domain.StaleRecord{
		{Title: "A", URL: "u1", DaysStale: 5},
		{Title: "B", URL: "u2", DaysStale: 10},
	}

	d := digest.Build(records, defaultLimit)
	require.Equal(t, 2, d.Total)
	require.Equal(t, []string{
		" 1. [B](u2) | 10 days with no reviews",
		" 2. [A](u1) | 5 days with no reviews",
	}, d.Lines)
	require.Equal(t, " 1. [B](u2) | 10 days with no reviews\n 2. [A](u1) | 5 days with no reviews", digest.Message(d))
}

func TestBuild_LimitKeepsTotal(t *testing.T) {
	records := []domain.StaleRecord{rec("x", 5), rec("y", 5), rec("z", 10)}

	d := digest.Build(records, 2)
	require.Equal(t, 3, d.Total)
	require.Equal(t, []string{"z", "y"}, titles(d.Records))
	require.Len(t, d.Lines, 2)
	require.Contains(t, d.Lines[0], " 1. [z]")
	require.Contains(t, d.Lines[1], " 2. [y]")
}

func TestBuild_Sizes(t *testing.T) {
	records := []domain.StaleRecord{rec("a", 1), rec("b", 2), rec("c", 3), rec("d", 4)}

	for _, limit := range []int{-1, 0, 1, 3, 4, 5, defaultLimit} {
		d := digest.Build(records, limit)
		want := max(0, min(limit, len(records)))
		require.Equal(t, len(records), d.Total, "limit %d", limit)
		require.Len(t, d.Records, want, "limit %d", limit)
		require.Len(t, d.Lines, want, "limit %d", limit)
		for i, r := range d.Records {
			require.Equal(t, digest.FormatLine(i+1, r), d.Lines[i])
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	d := digest.Build(nil, defaultLimit)
	require.True(t, d.Empty())
	require.Empty(t, d.Lines)
	require.Empty(t, digest.Message(d))
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "absent", args: nil, want: 999},
		{name: "valid", args: []string{"10"}, want: 10},
		{name: "padded", args: []string{" 7 "}, want: 7},
		{name: "not a number", args: []string{"ten"}, want: 999},
		{name: "zero", args: []string{"0"}, want: 999},
		{name: "negative", args: []string{"-3"}, want: 999},
		{name: "float", args: []string{"2.5"}, want: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, digest.ParseLimit(tt.args, defaultLimit))
		})
	}
}

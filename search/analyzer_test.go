package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, June 18 2025
func fixedClock() time.Time {
	return time.Date(2025, 6, 18, 15, 4, 5, 0, time.UTC)
}

func TestAnalyzer_RejectsEmptyQuery(t *testing.T) {
	a := NewAnalyzer(fixedClock)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := a.Analyze(query)
		assert.ErrorIs(t, err, ErrInvalidQuery, "query %q", query)
	}
}

func TestAnalyzer_TokenizesAndFiltersStopWords(t *testing.T) {
	a := NewAnalyzer(fixedClock)

	q, err := a.Analyze("Who is Sarah at Stripe?")
	require.NoError(t, err)

	assert.Equal(t, "who is sarah at stripe?", q.Lowered)
	assert.Equal(t, []string{"who", "is", "sarah", "at", "stripe"}, q.QueryWords)
	assert.Equal(t, []string{"sarah", "stripe"}, q.Keywords)
	assert.Nil(t, q.TargetDate)
}

func TestAnalyzer_StripsPunctuation(t *testing.T) {
	a := NewAnalyzer(fixedClock)

	q, err := a.Analyze(`"sarah," (stripe)!`)
	require.NoError(t, err)

	assert.Equal(t, []string{"sarah", "stripe"}, q.Keywords)
}

func TestAnalyzer_ResolvesDateTerms(t *testing.T) {
	a := NewAnalyzer(fixedClock)

	tests := []struct {
		name  string
		query string
		want  time.Time
	}{
		{
			name:  "today",
			query: "meetings today",
			want:  time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "tomorrow",
			query: "what do i have tomorrow",
			want:  time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "yesterday",
			query: "who did i meet yesterday",
			want:  time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "weekday later this week",
			query: "meetings on friday",
			want:  time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "weekday earlier this week resolves to the past",
			// The clock is Wednesday; Monday is two days back in the
			// Sunday-anchored week, not next week.
			query: "meetings on monday",
			want:  time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "sunday anchors the week",
			query: "anything sunday",
			want:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := a.Analyze(tt.query)
			require.NoError(t, err)
			require.NotNil(t, q.TargetDate)
			assert.True(t, q.TargetDate.Equal(tt.want),
				"got %v, want %v", q.TargetDate, tt.want)
		})
	}
}

func TestAnalyzer_FirstDateTermWins(t *testing.T) {
	a := NewAnalyzer(fixedClock)

	// "today" precedes weekday names in the scan order
	q, err := a.Analyze("friday or today")
	require.NoError(t, err)
	require.NotNil(t, q.TargetDate)
	assert.True(t, q.TargetDate.Equal(time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)))
}

func TestAnalyzer_DateTermsAreStopWords(t *testing.T) {
	a := NewAnalyzer(fixedClock)

	q, err := a.Analyze("meetings tomorrow with sarah")
	require.NoError(t, err)
	assert.NotContains(t, q.Keywords, "tomorrow")
	assert.Contains(t, q.Keywords, "sarah")
}

func TestAnalyzer_NilClockDefaultsToNow(t *testing.T) {
	a := NewAnalyzer(nil)

	q, err := a.Analyze("meetings today")
	require.NoError(t, err)
	require.NotNil(t, q.TargetDate)
	assert.True(t, sameDay(*q.TargetDate, time.Now()))
}

func TestSameDay(t *testing.T) {
	base := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	assert.True(t, sameDay(base, base.Add(23*time.Hour)))
	assert.False(t, sameDay(base, base.AddDate(0, 0, 1)))
	assert.False(t, sameDay(base, base.AddDate(0, 1, 0)))
	assert.False(t, sameDay(base, base.AddDate(1, 0, 0)))
}

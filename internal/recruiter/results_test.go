package recruiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/interview-panel/internal/platform"
)

func result(id, title string, score float64) *platform.CompletedInterview {
	return &platform.CompletedInterview{ID: id, InterviewTitle: title, Score: score}
}

func resultIDs(list []*platform.CompletedInterview) []string {
	out := make([]string, 0, len(list))
	for _, ci := range list {
		out = append(out, ci.ID)
	}
	return out
}

func TestGroupByTitle(t *testing.T) {
	groups := GroupByTitle([]*platform.CompletedInterview{
		result("1", "Go", 50),
		result("2", "", 70),
		result("3", "Go", 90),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "Go", groups[0].Title)
	assert.Equal(t, []string{"1", "3"}, resultIDs(groups[0].Interviews))
	assert.Equal(t, "Sin título", groups[1].Title)
}

func TestRankSplitsTopAndBottom(t *testing.T) {
	var list []*platform.CompletedInterview
	for i, score := range []float64{40, 95, 70, 10, 85, 60, 20} {
		list = append(list, result(string(rune('a'+i)), "Go", score))
	}

	r := Rank(TitleGroup{Title: "Go", Interviews: list})
	assert.Equal(t, 7, r.Count)
	assert.Equal(t, []string{"b", "e", "c"}, resultIDs(r.Top))
	assert.Equal(t, []string{"a", "g", "d"}, resultIDs(r.Bottom))
}

func TestRankSmallGroups(t *testing.T) {
	r := Rank(TitleGroup{Interviews: []*platform.CompletedInterview{result("a", "", 50), result("b", "", 80)}})
	assert.Equal(t, []string{"b", "a"}, resultIDs(r.Top))
	assert.Empty(t, r.Bottom)

	r = Rank(TitleGroup{Interviews: []*platform.CompletedInterview{
		result("a", "", 1), result("b", "", 2), result("c", "", 3), result("d", "", 4), result("e", "", 5),
	}})
	assert.Equal(t, []string{"e", "d", "c"}, resultIDs(r.Top))
	assert.Equal(t, []string{"b", "a"}, resultIDs(r.Bottom))
}

func TestRankByTitle(t *testing.T) {
	rankings := RankByTitle([]*platform.CompletedInterview{result("1", "Go", 50), result("2", "Rust", 70)})
	require.Len(t, rankings, 2)
	assert.Equal(t, "Rust", rankings[1].Title)
}

func TestScoreLevel(t *testing.T) {
	assert.Equal(t, LevelExcellent, ScoreLevel(80))
	assert.Equal(t, LevelGood, ScoreLevel(79.9))
	assert.Equal(t, LevelGood, ScoreLevel(60))
	assert.Equal(t, LevelImprove, ScoreLevel(59))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "1:05", FormatDuration(65))
	assert.Equal(t, "12:34", FormatDuration(754))
	assert.Equal(t, "0:00", FormatDuration(-3))
}

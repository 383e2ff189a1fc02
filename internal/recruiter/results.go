package recruiter

import (
	"fmt"
	"sort"

	"github.com/spigell/interview-panel/internal/platform"
)

const (
	untitled  = "Sin título"
	rankDepth = 3
)

// Score levels shown next to a result.
const (
	LevelExcellent = "Excelente"
	LevelGood      = "Bueno"
	LevelImprove   = "Necesita mejorar"
)

// TitleGroup is every completed interview sharing a title.
type TitleGroup struct {
	Title      string
	Interviews []*platform.CompletedInterview
}

// GroupByTitle groups results by interview title in order of first appearance.
func GroupByTitle(list []*platform.CompletedInterview) []TitleGroup {
	index := map[string]int{}
	var groups []TitleGroup

	for _, ci := range list {
		title := ci.InterviewTitle
		if title == "" {
			title = untitled
		}

		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, TitleGroup{Title: title})
		}
		groups[i].Interviews = append(groups[i].Interviews, ci)
	}

	return groups
}

// Ranking is the best and the worst results of one title. Bottom never
// repeats an entry of Top.
type Ranking struct {
	Title  string
	Count  int
	Top    []*platform.CompletedInterview
	Bottom []*platform.CompletedInterview
}

func Rank(group TitleGroup) Ranking {
	sorted := append([]*platform.CompletedInterview(nil), group.Interviews...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	top := min(rankDepth, len(sorted))
	bottom := min(rankDepth, len(sorted)-top)

	return Ranking{
		Title:  group.Title,
		Count:  len(sorted),
		Top:    sorted[:top],
		Bottom: sorted[len(sorted)-bottom:],
	}
}

// RankByTitle groups the results and ranks every group.
func RankByTitle(list []*platform.CompletedInterview) []Ranking {
	groups := GroupByTitle(list)
	rankings := make([]Ranking, 0, len(groups))
	for _, g := range groups {
		rankings = append(rankings, Rank(g))
	}
	return rankings
}

func ScoreLevel(score float64) string {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	default:
		return LevelImprove
	}
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

package core

import (
	"testing"

	"github.com/huangsam/awardgap/schema"
	"github.com/stretchr/testify/assert"
)

func win(year int, producers string) schema.Movie {
	return schema.Movie{Year: year, Title: producers, Producers: producers, Winner: true}
}

func TestSplitProducers(t *testing.T) {
	tests := []struct {
		field string
		want  []string
	}{
		{"Allan Carr", []string{"Allan Carr"}},
		{"Jerry Weintraub, Allan Carr", []string{"Jerry Weintraub", "Allan Carr"}},
		{"Steven Spielberg, Kathleen Kennedy and Frank Marshall", []string{"Steven Spielberg", "Kathleen Kennedy", "Frank Marshall"}},
		{"Alexandra Milchan, Scott Lambert and ", []string{"Alexandra Milchan", "Scott Lambert"}},
		{"Anderson Brothers", []string{"Anderson Brothers"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitProducers(tt.field))
		})
	}
}

func TestAnalyzeIntervals_SinglePair(t *testing.T) {
	report := AnalyzeIntervals([]schema.Movie{win(1981, "P"), win(1980, "P")})
	expected := []schema.ProducerInterval{{Producer: "P", Interval: 1, PreviousWin: 1980, FollowingWin: 1981}}
	assert.Equal(t, expected, report.Min)
	assert.Equal(t, expected, report.Max)
}

func TestAnalyzeIntervals_DistinctExtremes(t *testing.T) {
	report := AnalyzeIntervals([]schema.Movie{
		win(1980, "A"), win(1981, "A"),
		win(1990, "B"), win(1995, "B"),
		win(2000, "C"), win(2010, "C"),
	})
	assert.Equal(t, []schema.ProducerInterval{{Producer: "A", Interval: 1, PreviousWin: 1980, FollowingWin: 1981}}, report.Min)
	assert.Equal(t, []schema.ProducerInterval{{Producer: "C", Interval: 10, PreviousWin: 2000, FollowingWin: 2010}}, report.Max)
}

func TestAnalyzeIntervals_TiesAndSharedCredits(t *testing.T) {
	movies := []schema.Movie{
		win(1990, "Alpha and Beta"),
		win(1991, "Alpha, Gamma"),
		win(1992, "Beta"),
		win(1993, "Gamma"),
		{Year: 1994, Title: "Loser", Producers: "Alpha", Winner: false},
		win(2001, "Alpha"),
	}
	report := AnalyzeIntervals(movies)
	assert.Equal(t, []schema.ProducerInterval{
		{Producer: "Alpha", Interval: 1, PreviousWin: 1990, FollowingWin: 1991},
	}, report.Min)
	assert.Equal(t, []schema.ProducerInterval{
		{Producer: "Alpha", Interval: 10, PreviousWin: 1991, FollowingWin: 2001},
	}, report.Max)

	tied := AnalyzeIntervals([]schema.Movie{
		win(2000, "Zed"), win(2002, "Zed"),
		win(1980, "Amy"), win(1982, "Amy"),
	})
	assert.Equal(t, []schema.ProducerInterval{
		{Producer: "Zed", Interval: 2, PreviousWin: 2000, FollowingWin: 2002},
		{Producer: "Amy", Interval: 2, PreviousWin: 1980, FollowingWin: 1982},
	}, tied.Min)
	assert.Equal(t, tied.Min, tied.Max)
}

func TestAnalyzeIntervals_SameYearWins(t *testing.T) {
	report := AnalyzeIntervals([]schema.Movie{
		{Year: 1984, Title: "Bolero", Producers: "Bo Derek", Winner: true},
		{Year: 1984, Title: "Bolero II", Producers: "Bo Derek", Winner: true},
		{Year: 1990, Title: "Ghosts Can't Do It", Producers: "Bo Derek", Winner: true},
	})
	assert.Equal(t, 0, report.Min[0].Interval)
	assert.Equal(t, 6, report.Max[0].Interval)
}

func TestAnalyzeIntervals_DuplicateCreditCountsOnce(t *testing.T) {
	report := AnalyzeIntervals([]schema.Movie{
		win(1980, "Pat and Pat"),
		win(1985, "Pat"),
	})
	assert.Equal(t, []schema.ProducerInterval{{Producer: "Pat", Interval: 5, PreviousWin: 1980, FollowingWin: 1985}}, report.Min)
}

func TestAnalyzeIntervals_NoEligibleProducer(t *testing.T) {
	tests := map[string][]schema.Movie{
		"nil":        nil,
		"single win": {win(1980, "A"), win(1990, "B")},
		"non winners": {
			{Year: 1980, Producers: "A"},
			{Year: 1990, Producers: "A"},
		},
		"empty producers": {win(1980, ""), win(1990, "")},
	}
	for name, movies := range tests {
		t.Run(name, func(t *testing.T) {
			report := AnalyzeIntervals(movies)
			assert.True(t, report.IsEmpty())
			assert.NotNil(t, report.Min)
			assert.NotNil(t, report.Max)
		})
	}
}

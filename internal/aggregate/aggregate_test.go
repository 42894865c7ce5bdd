package aggregate_test

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/aggregate"
	"github.com/oggyb/barchat/internal/model"
)

var night = time.Date(2026, 6, 12, 23, 0, 0, 0, time.UTC)

func directory() aggregate.Directory {
	return aggregate.NewDirectory([]model.Identity{
		{Name: "Alice", Table: "5", Status: model.StatusSingle},
		{Name: "Bob", Table: "3", Status: model.StatusTaken},
		{Name: "Carol", Table: "5"},
	})
}

func msg(author, table string) model.Message {
	return model.Message{Text: "hi", AuthorName: author, AuthorTable: table, CreatedAt: night}
}

func like(from, to string) model.LikeEdge {
	return model.LikeEdge{From: from, To: to, CreatedAt: night}
}

func vote(voter, table, music string) model.Vote {
	return model.Vote{MusicID: music, MusicName: music, VoterName: voter, VoterTable: table, CreatedAt: night}
}

func TestMatches(t *testing.T) {
	assert.Equal(t, []string{}, aggregate.Matches(nil, nil))
	assert.Equal(t, []string{"Bob"}, aggregate.Matches([]string{"Bob", "Dan", "Bob"}, []string{"Eve", "Bob"}))

	// order independence of the set
	a := aggregate.Matches([]string{"Bob", "Carol", "Dan"}, []string{"Dan", "Bob"})
	b := aggregate.Matches([]string{"Dan", "Carol", "Bob"}, []string{"Bob", "Dan"})
	slices.Sort(a)
	slices.Sort(b)
	assert.Equal(t, a, b)

	// adding a like never removes a match
	before := aggregate.Matches([]string{"Bob"}, []string{"Bob"})
	after := aggregate.Matches([]string{"Bob", "Carol"}, []string{"Bob"})
	assert.Subset(t, after, before)

	// removing a like removes the dependent match
	assert.Empty(t, aggregate.Matches([]string{"Bob"}, []string{}))
}

func TestLikedAndLikerNames_Dedup(t *testing.T) {
	edges := []model.LikeEdge{like("Alice", "Bob"), like("Alice", "Bob"), like("Carol", "Bob")}
	assert.Equal(t, []string{"Bob"}, aggregate.LikedNames(edges))
	assert.Equal(t, []string{"Alice", "Carol"}, aggregate.LikerNames(edges))
}

func TestTableActivity(t *testing.T) {
	messages := []model.Message{msg("Alice", "5"), msg("Bob", "3"), msg("Alice", "5")}
	likes := []model.LikeEdge{like("Alice", "Bob"), like("Ghost", "Bob")}
	votes := []model.Vote{vote("Bob", "3", "Song A"), vote("Zed", "7", "Song B")}

	got := aggregate.TableActivity(messages, likes, votes, directory(), aggregate.DefaultWeights)

	// 5: 2 msgs + 0.5 like = 2.5; 3: 1 msg + 0.5 + 0.5 likes + 0.3 vote = 2.3; 7: 0.3
	assert.Equal(t, []aggregate.TableScore{
		{Table: "5", Score: 2.5},
		{Table: "3", Score: 2.3},
		{Table: "7", Score: 0.3},
	}, got)
}

func TestTableActivity_TiesKeepEncounterOrder(t *testing.T) {
	got := aggregate.TableActivity([]model.Message{msg("Bob", "3"), msg("Alice", "5")}, nil, nil, nil, aggregate.DefaultWeights)
	assert.Equal(t, []aggregate.TableScore{{Table: "3", Score: 1}, {Table: "5", Score: 1}}, got)
}

func TestTableActivity_OrderIndependentAndMonotonic(t *testing.T) {
	messages := []model.Message{msg("Alice", "5"), msg("Bob", "3"), msg("Carol", "5")}
	likes := []model.LikeEdge{like("Alice", "Bob"), like("Bob", "Carol")}
	votes := []model.Vote{vote("Bob", "3", "x"), vote("Alice", "5", "y")}

	scores := func(m []model.Message, l []model.LikeEdge, v []model.Vote) map[string]float64 {
		out := map[string]float64{}
		for _, s := range aggregate.TableActivity(m, l, v, directory(), aggregate.DefaultWeights) {
			out[s.Table] = s.Score
		}
		return out
	}

	base := scores(messages, likes, votes)
	reversed := scores(reverse(messages), reverse(likes), reverse(votes))
	assert.Equal(t, base, reversed)

	more := scores(append(slices.Clone(messages), msg("Bob", "3")), likes, votes)
	for table, s := range base {
		assert.GreaterOrEqual(t, more[table], s, table)
	}

	// re-delivery of the same snapshot recomputes identically
	assert.Equal(t, base, scores(messages, likes, votes))
}

func TestUserRanking(t *testing.T) {
	messages := []model.Message{msg("Alice", "5"), msg("Alice", "5"), msg("Ghost", "9")}
	likes := []model.LikeEdge{like("Bob", "Alice"), like("Bob", "Carol")}
	votes := []model.Vote{vote("Carol", "5", "x")}

	got := aggregate.UserRanking(messages, likes, votes, directory(), aggregate.DefaultWeights)
	require.Len(t, got, 4)
	assert.Equal(t, aggregate.UserScore{Name: "Alice", Table: "5", Status: "Single", Score: 2}, got[0])
	assert.Equal(t, aggregate.UserScore{Name: "Bob", Table: "3", Status: "Taken", Score: 2}, got[1])
	assert.Equal(t, aggregate.UserScore{Name: "Ghost", Table: aggregate.Unknown, Status: aggregate.Unknown, Score: 1}, got[2])
	assert.Equal(t, aggregate.UserScore{Name: "Carol", Table: "5", Status: aggregate.Unknown, Score: 0.5}, got[3])
}

func TestUserRanking_TopTen(t *testing.T) {
	var messages []model.Message
	for i := 0; i < 12; i++ {
		name := string(rune('A' + i))
		for j := 0; j <= i; j++ {
			messages = append(messages, msg(name, "1"))
		}
	}
	got := aggregate.UserRanking(messages, nil, nil, nil, aggregate.DefaultWeights)
	require.Len(t, got, 10)
	assert.Equal(t, "L", got[0].Name)
	assert.Equal(t, float64(12), got[0].Score)
}

func TestVoteTally(t *testing.T) {
	var votes []model.Vote
	for i, song := range []string{"a", "b", "b", "c", "c", "c", "d", "e", "f", "b"} {
		votes = append(votes, vote(string(rune('A'+i)), "1", song))
	}
	got := aggregate.VoteTally(votes)
	require.Len(t, got, 5)
	assert.Equal(t, aggregate.VoteCount{MusicName: "b", Votes: 3, Percent: 30}, got[0])
	assert.Equal(t, aggregate.VoteCount{MusicName: "c", Votes: 3, Percent: 30}, got[1])
	assert.Equal(t, aggregate.VoteCount{MusicName: "a", Votes: 1, Percent: 10}, got[2])

	assert.Empty(t, aggregate.VoteTally(nil))
	assert.Equal(t, 33.3, aggregate.Percent(1, 3))
	assert.Equal(t, float64(0), aggregate.Percent(1, 0))
}

func TestRaffleOdds(t *testing.T) {
	assert.Equal(t, float64(0), aggregate.RaffleOdds(0))
	assert.Equal(t, float64(100), aggregate.RaffleOdds(1))
	assert.Equal(t, 25.0, aggregate.RaffleOdds(4))
	assert.Equal(t, 33.3, aggregate.RaffleOdds(3))
	assert.Equal(t, 14.3, aggregate.RaffleOdds(7))
}

func TestDraw(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	_, err := aggregate.Draw(model.RaffleState{}, rng, night)
	assert.ErrorIs(t, err, aggregate.ErrNoParticipants)

	state := model.RaffleState{Participants: []model.RaffleEntry{
		{Name: "Alice", Table: "5"}, {Name: "Bob", Table: "3"}, {Name: "Carol", Table: "5"},
	}}
	next, err := aggregate.Draw(state, rng, night)
	require.NoError(t, err)
	require.NotNil(t, next.Winner)
	assert.Contains(t, state.Participants, *next.Winner)
	require.Len(t, next.History, 1)
	assert.Equal(t, 3, next.History[0].ParticipantCount)
	assert.Equal(t, *next.Winner, next.History[0].Winner)
	assert.Nil(t, state.Winner, "input untouched")

	reset := aggregate.Reset(next)
	assert.Nil(t, reset.Winner)
	assert.Empty(t, reset.Participants)
	assert.Len(t, reset.History, 1)
}

func TestDraw_Uniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	state := model.RaffleState{Participants: []model.RaffleEntry{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}}

	wins := map[string]int{}
	for i := 0; i < 4000; i++ {
		next, err := aggregate.Draw(state, rng, night)
		require.NoError(t, err)
		wins[next.Winner.Name]++
	}
	for name, n := range wins {
		assert.InDelta(t, 1000, n, 150, name)
	}
}

func reverse[T any](in []T) []T {
	out := slices.Clone(in)
	slices.Reverse(out)
	return out
}

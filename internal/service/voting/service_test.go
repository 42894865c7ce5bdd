package voting_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/service/voting"
	tu "github.com/oggyb/barchat/internal/testutil"
)

// setupService seeds a small catalog and returns its ids by name.
func setupService(t *testing.T, mutate ...func(*config.Config)) (*voting.Service, *tu.App, map[string]string) {
	t.Helper()
	a := tu.NewApp(t, mutate...)

	ids := map[string]string{}
	for _, m := range []model.Music{
		{Name: "Evidências", Artist: "Chitãozinho & Xororó"},
		{Name: "Garota de Ipanema", Artist: "Tom Jobim"},
		{Name: "Aquarela", Artist: "Toquinho"},
	} {
		id, err := a.Repos.Votes.AddMusic(context.Background(), m)
		require.NoError(t, err)
		ids[m.Name] = id
	}
	return voting.NewVotingService(a.AppContext), a, ids
}

func voter(i int) *pb.Identity {
	return &pb.Identity{Name: fmt.Sprintf("Patron%c", 'A'+i), Table: fmt.Sprint(i%3 + 1)}
}

func TestListMusic_SortedByName(t *testing.T) {
	svc, _, _ := setupService(t)
	resp, err := svc.ListMusic(context.Background(), &pb.ListMusicRequest{})
	require.NoError(t, err)

	var names []string
	for _, m := range resp.Music {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Aquarela", "Evidências", "Garota de Ipanema"}, names)
}

func TestVote_OncePerPatron(t *testing.T) {
	ctx := context.Background()
	svc, a, ids := setupService(t)
	alice := &pb.Identity{Name: "Alice", Table: "5"}

	resp, err := svc.Vote(ctx, &pb.VoteRequest{Identity: alice, MusicId: ids["Aquarela"]})
	require.NoError(t, err)
	assert.Equal(t, "Aquarela", resp.Vote.MusicName)
	assert.Equal(t, int32(4), resp.Remaining)

	_, err = svc.Vote(ctx, &pb.VoteRequest{Identity: alice, MusicId: ids["Evidências"]})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.Votes))

	mine, err := svc.MyVote(ctx, &pb.MyVoteRequest{Identity: alice})
	require.NoError(t, err)
	require.True(t, mine.Voted)
	assert.Equal(t, "Aquarela", mine.Vote.MusicName)

	// same name at another table is another patron
	_, err = svc.Vote(ctx, &pb.VoteRequest{Identity: &pb.Identity{Name: "Alice", Table: "6"}, MusicId: ids["Aquarela"]})
	assert.NoError(t, err)
}

func TestVote_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.Vote(ctx, &pb.VoteRequest{Identity: voter(0), MusicId: "nope"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.Vote(ctx, &pb.VoteRequest{Identity: voter(0)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	none, err := svc.MyVote(ctx, &pb.MyVoteRequest{Identity: voter(0)})
	require.NoError(t, err)
	assert.False(t, none.Voted)
	assert.Nil(t, none.Vote)
}

func TestVote_RateLimitedIsNotRecorded(t *testing.T) {
	ctx := context.Background()
	svc, a, ids := setupService(t, func(c *config.Config) {
		c.RateLimit.Rules[config.LimiterVotes] = config.RateRule{Max: 0, Window: time.Hour}
	})
	alice := &pb.Identity{Name: "Alice", Table: "5"}

	_, err := svc.Vote(ctx, &pb.VoteRequest{Identity: alice, MusicId: ids["Aquarela"]})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	all, err := a.Repos.Votes.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestResults(t *testing.T) {
	ctx := context.Background()
	svc, _, ids := setupService(t)

	picks := []string{"Aquarela", "Aquarela", "Evidências", "Aquarela"}
	for i, name := range picks {
		_, err := svc.Vote(ctx, &pb.VoteRequest{Identity: voter(i), MusicId: ids[name]})
		require.NoError(t, err)
	}

	resp, err := svc.Results(ctx, &pb.ResultsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(4), resp.TotalVotes)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Aquarela", resp.Results[0].MusicName)
	assert.Equal(t, int32(3), resp.Results[0].Votes)
	assert.Equal(t, 75.0, resp.Results[0].Percent)
	assert.Equal(t, 25.0, resp.Results[1].Percent)
}

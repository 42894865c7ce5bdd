package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/barchat/internal/aggregate"
	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/service/admin"
	tu "github.com/oggyb/barchat/internal/testutil"
)

var (
	alice = model.Identity{Name: "Alice", Table: "5", Status: model.StatusSingle}
	bob   = model.Identity{Name: "Bob", Table: "7"}
)

func setupService(t *testing.T) (*admin.Service, *tu.App) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("last call"), bcrypt.MinCost)
	require.NoError(t, err)

	a := tu.NewApp(t, func(c *config.Config) { c.Admin.PassphraseHash = string(hash) })
	return admin.NewAdminService(a.AppContext), a
}

func TestLogin(t *testing.T) {
	svc, a := setupService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &pb.LoginRequest{Passphrase: "first call"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	resp, err := svc.Login(ctx, &pb.LoginRequest{Passphrase: "last call"})
	require.NoError(t, err)
	assert.Equal(t, tu.Night.Add(a.Config.Admin.TokenTTL).UnixMilli(), resp.ExpiresAtUnixMs)
	assert.NoError(t, a.Admin.Verify(resp.Token))
}

func TestDashboard(t *testing.T) {
	svc, a := setupService(t)
	ctx := context.Background()
	repos := a.Repos

	require.NoError(t, a.Presence.Register(ctx, alice))
	require.NoError(t, a.Presence.Register(ctx, bob))

	for _, m := range []model.Message{
		{Text: "oi", AuthorName: "Alice", AuthorTable: "5", CreatedAt: tu.Night},
		{Text: "tudo bem?", AuthorName: "Alice", AuthorTable: "5", CreatedAt: tu.Night},
		{Text: "opa", AuthorName: "Bob", AuthorTable: "7", CreatedAt: tu.Night},
	} {
		_, err := repos.Messages.Append(ctx, m)
		require.NoError(t, err)
	}
	require.NoError(t, repos.Likes.Create(ctx, model.LikeEdge{From: "Alice", FromTable: "5", To: "Bob", ToTable: "7"}))
	require.NoError(t, repos.Votes.Cast(ctx, model.Vote{MusicID: "m1", MusicName: "Aquarela", VoterName: "Bob", VoterTable: "7"}))
	_, err := repos.Drinks.Send(ctx, model.DrinkGift{From: "Alice", FromTable: "5", To: "Bob", ToTable: "7", DrinkType: "Beer", Price: 12})
	require.NoError(t, err)
	_, err = repos.Raffle.Join(ctx, alice, tu.Night)
	require.NoError(t, err)

	resp, err := svc.Dashboard(ctx, &pb.DashboardRequest{})
	require.NoError(t, err)

	require.Len(t, resp.TableActivity, 2)
	assert.Equal(t, "5", resp.TableActivity[0].GetTable())
	assert.Equal(t, 2.5, resp.TableActivity[0].GetScore())
	assert.Equal(t, "7", resp.TableActivity[1].GetTable())
	assert.Equal(t, 1.8, resp.TableActivity[1].GetScore())

	require.Len(t, resp.UserRanking, 2)
	assert.Equal(t, "Alice", resp.UserRanking[0].GetName())
	assert.Equal(t, "Single", resp.UserRanking[0].GetStatus())
	assert.Equal(t, 3.0, resp.UserRanking[0].GetScore())
	assert.Equal(t, "Bob", resp.UserRanking[1].GetName())
	assert.Equal(t, aggregate.Unknown, resp.UserRanking[1].GetStatus())
	assert.Equal(t, 1.5, resp.UserRanking[1].GetScore())

	require.Len(t, resp.VoteTally, 1)
	assert.Equal(t, "Aquarela", resp.VoteTally[0].GetMusicName())
	assert.Equal(t, int32(1), resp.VoteTally[0].GetVotes())
	assert.Equal(t, 100.0, resp.VoteTally[0].GetPercent())

	assert.Equal(t, int32(2), resp.ActivePatrons)
	assert.Equal(t, int32(3), resp.Messages)
	assert.Equal(t, int32(1), resp.Likes)
	assert.Equal(t, int32(1), resp.Drinks)
	assert.Equal(t, int32(1), resp.PendingDrinks)
	assert.Equal(t, int32(1), resp.Votes)
	assert.Len(t, resp.Raffle.Participants, 1)
	assert.Equal(t, 100.0, resp.Raffle.Odds)
}

func TestDashboard_Empty(t *testing.T) {
	svc, _ := setupService(t)

	resp, err := svc.Dashboard(context.Background(), &pb.DashboardRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.TableActivity)
	assert.Empty(t, resp.UserRanking)
	assert.Zero(t, resp.ActivePatrons)
	assert.NotNil(t, resp.Raffle.Participants)
}

func TestRaffleDrawAndReset(t *testing.T) {
	svc, a := setupService(t)
	ctx := context.Background()

	_, err := svc.DrawRaffle(ctx, &pb.DrawRaffleRequest{})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	for _, id := range []model.Identity{alice, bob} {
		_, err := a.Repos.Raffle.Join(ctx, id, tu.Night)
		require.NoError(t, err)
	}

	drawn, err := svc.DrawRaffle(ctx, &pb.DrawRaffleRequest{})
	require.NoError(t, err)
	require.NotNil(t, drawn.Winner)
	assert.Contains(t, []string{"Alice", "Bob"}, drawn.Winner.Name)
	require.Len(t, drawn.History, 1)
	assert.Equal(t, int32(2), drawn.History[0].ParticipantCount)
	assert.Equal(t, tu.Night.UnixMilli(), drawn.History[0].DateUnixMs)

	reset, err := svc.ResetRaffle(ctx, &pb.ResetRaffleRequest{})
	require.NoError(t, err)
	assert.Empty(t, reset.Participants)
	assert.Nil(t, reset.Winner)
	assert.Len(t, reset.History, 1)

	state, err := a.Repos.Raffle.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Participants)
	assert.Len(t, state.History, 1)
}

func TestAddMusic(t *testing.T) {
	svc, a := setupService(t)
	ctx := context.Background()

	resp, err := svc.AddMusic(ctx, &pb.AddMusicRequest{Name: "  Aquarela ", Artist: "Toquinho"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Music.GetId())
	assert.Equal(t, "Aquarela", resp.Music.Name)

	_, err = svc.AddMusic(ctx, &pb.AddMusicRequest{Name: "Aquarela"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = svc.AddMusic(ctx, &pb.AddMusicRequest{Name: "<>"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	catalog, err := a.Repos.Votes.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
}

func TestResetVotes(t *testing.T) {
	svc, a := setupService(t)
	ctx := context.Background()

	for _, v := range []model.Vote{
		{MusicID: "m1", MusicName: "Aquarela", VoterName: "Alice", VoterTable: "5"},
		{MusicID: "m1", MusicName: "Aquarela", VoterName: "Bob", VoterTable: "7"},
	} {
		require.NoError(t, a.Repos.Votes.Cast(ctx, v))
	}

	resp, err := svc.ResetVotes(ctx, &pb.ResetVotesRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.Removed)

	_, voted, err := a.Repos.Votes.ByVoter(ctx, alice)
	require.NoError(t, err)
	assert.False(t, voted)
}

package raffle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/service/raffle"
	tu "github.com/oggyb/barchat/internal/testutil"
)

var (
	alice = &pb.Identity{Name: "Alice", Table: "5"}
	bob   = &pb.Identity{Name: "Bob", Table: "7"}
)

func TestState_EmptyBeforeFirstJoin(t *testing.T) {
	a := tu.NewApp(t)
	svc := raffle.NewRaffleService(a.AppContext)

	resp, err := svc.State(context.Background(), &pb.RaffleStateRequest{Identity: alice})
	require.NoError(t, err)
	assert.Empty(t, resp.Participants)
	assert.NotNil(t, resp.Participants)
	assert.Nil(t, resp.Winner)
	assert.Zero(t, resp.Odds)
	assert.False(t, resp.Joined)
}

func TestJoin(t *testing.T) {
	ctx := context.Background()
	a := tu.NewApp(t)
	svc := raffle.NewRaffleService(a.AppContext)

	resp, err := svc.Join(ctx, &pb.JoinRaffleRequest{Identity: alice})
	require.NoError(t, err)
	assert.True(t, resp.Joined)
	assert.Equal(t, 100.0, resp.Odds)
	assert.Equal(t, tu.Night.UnixMilli(), resp.Participants[0].GetJoinedAtUnixMs())

	_, err = svc.Join(ctx, &pb.JoinRaffleRequest{Identity: alice})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = svc.Join(ctx, &pb.JoinRaffleRequest{Identity: bob})
	require.NoError(t, err)

	state, err := svc.State(ctx, &pb.RaffleStateRequest{})
	require.NoError(t, err)
	assert.Len(t, state.Participants, 2)
	assert.Equal(t, 50.0, state.Odds)
	assert.False(t, state.Joined)

	_, err = svc.Join(ctx, &pb.JoinRaffleRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

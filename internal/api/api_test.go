package api_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
)

var night = time.Date(2026, 6, 12, 23, 0, 0, 0, time.UTC)

func TestIdentity(t *testing.T) {
	in := model.Identity{Name: "Alice", Table: "5", Status: model.StatusSingle}
	assert.Equal(t, in, api.Identity(api.IdentityPB(in)))

	assert.Equal(t, model.Identity{}, api.Identity(nil))
}

func TestUnixMilli(t *testing.T) {
	assert.Zero(t, api.UnixMilli(time.Time{}))
	assert.Equal(t, night.UnixMilli(), api.UnixMilli(night))
}

func TestIsAdminMethod(t *testing.T) {
	assert.True(t, api.IsAdminMethod(pb.Admin_Dashboard_FullMethodName))
	assert.True(t, api.IsAdminMethod(api.AdminLoginMethod))
	assert.False(t, api.IsAdminMethod(pb.Chat_SendMessage_FullMethodName))
	assert.False(t, api.IsAdminMethod("/barchat.v1.AdminTools/Dashboard"))
}

func TestRaffleState_Empty(t *testing.T) {
	resp := api.RaffleState(model.RaffleState{}, nil)

	assert.NotNil(t, resp.Participants)
	assert.NotNil(t, resp.History)
	assert.Nil(t, resp.Winner)
	assert.Zero(t, resp.Odds)
	assert.False(t, resp.Joined)
}

func TestRaffleState_Joined(t *testing.T) {
	alice := model.RaffleEntry{Name: "Alice", Table: "5", JoinedAt: night}
	bob := model.RaffleEntry{Name: "Bob", Table: "7", JoinedAt: night.Add(time.Minute)}
	state := model.RaffleState{
		Participants: []model.RaffleEntry{alice, bob},
		Winner:       &bob,
		History:      []model.RaffleDraw{{Winner: bob, ParticipantCount: 2, Date: night.Add(time.Hour)}},
	}

	who := model.Identity{Name: "Alice", Table: "5"}
	resp := api.RaffleState(state, &who)

	assert.True(t, resp.Joined)
	assert.Equal(t, 50.0, resp.Odds)
	require.Len(t, resp.Participants, 2)
	assert.Equal(t, night.UnixMilli(), resp.Participants[0].JoinedAtUnixMs)
	assert.Equal(t, "Bob", resp.GetWinner().GetName())
	require.Len(t, resp.History, 1)
	assert.Equal(t, int32(2), resp.History[0].ParticipantCount)
	assert.Equal(t, night.Add(time.Hour).UnixMilli(), resp.History[0].DateUnixMs)

	stranger := model.Identity{Name: "Carol", Table: "1"}
	assert.False(t, api.RaffleState(state, &stranger).Joined)
}

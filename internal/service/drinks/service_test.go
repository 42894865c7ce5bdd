package drinks_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/service/drinks"
	tu "github.com/oggyb/barchat/internal/testutil"
)

var (
	alice = model.Identity{Name: "Alice", Table: "5"}
	bob   = model.Identity{Name: "Bob", Table: "7"}
)

func setupService(t *testing.T) (*drinks.Service, *tu.App) {
	t.Helper()
	a := tu.NewApp(t)
	for _, id := range []model.Identity{alice, bob} {
		require.NoError(t, a.Presence.Register(context.Background(), id))
	}
	return drinks.NewDrinksService(a.AppContext), a
}

func send(t *testing.T, svc *drinks.Service, from model.Identity, to, drink string, anonymous bool) *pb.Drink {
	t.Helper()
	resp, err := svc.SendDrink(context.Background(), &pb.SendDrinkRequest{
		Identity: api.IdentityPB(from), ToName: to, DrinkType: drink, Anonymous: anonymous,
	})
	require.NoError(t, err)
	return resp.Drink
}

func TestMenu(t *testing.T) {
	svc, _ := setupService(t)
	resp, err := svc.Menu(context.Background(), &pb.MenuRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Drinks, len(drinks.Menu))
	for i, item := range drinks.Menu {
		assert.Equal(t, item.Type, resp.Drinks[i].GetType())
		assert.Equal(t, item.Price, resp.Drinks[i].GetPrice())
	}
}

func TestSendDrink(t *testing.T) {
	ctx := context.Background()
	svc, a := setupService(t)

	d := send(t, svc, alice, "Bob", "Beer", false)
	assert.NotEmpty(t, d.Id)
	assert.Equal(t, string(model.GiftPending), d.Status)
	assert.Equal(t, 12.0, d.Price)
	assert.Equal(t, "7", d.ToTable)
	assert.Zero(t, d.ResolvedAtUnixMs)
	assert.Equal(t, tu.Night.UnixMilli(), d.CreatedAtUnixMs)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.Drinks.WithLabelValues("pending")))

	_, err := svc.SendDrink(ctx, &pb.SendDrinkRequest{Identity: api.IdentityPB(alice), ToName: "Bob", DrinkType: "Absinthe"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.SendDrink(ctx, &pb.SendDrinkRequest{Identity: api.IdentityPB(alice), ToName: "Alice", DrinkType: "Beer"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRespondDrink_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, a := setupService(t)

	d := send(t, svc, alice, "Bob", "Caipirinha", false)

	// only Bob can answer
	_, err := svc.RespondDrink(ctx, &pb.RespondDrinkRequest{Identity: api.IdentityPB(alice), DrinkId: d.Id, Accept: true})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	a.Clock.Advance(time.Minute)
	resp, err := svc.RespondDrink(ctx, &pb.RespondDrinkRequest{Identity: api.IdentityPB(bob), DrinkId: d.Id, Accept: true})
	require.NoError(t, err)
	assert.Equal(t, string(model.GiftAccepted), resp.Drink.Status)
	assert.Equal(t, tu.Night.Add(time.Minute).UnixMilli(), resp.Drink.ResolvedAtUnixMs)
	require.NotNil(t, resp.SenderTab)
	assert.Equal(t, 18.5, resp.SenderTab.Total)
	assert.Equal(t, int32(1), resp.SenderTab.Drinks)

	// answered once, never again
	_, err = svc.RespondDrink(ctx, &pb.RespondDrinkRequest{Identity: api.IdentityPB(bob), DrinkId: d.Id, Accept: false})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = svc.RespondDrink(ctx, &pb.RespondDrinkRequest{Identity: api.IdentityPB(bob), DrinkId: "missing", Accept: true})
	assert.Equal(t, codes.NotFound, status.Code(err))

	tab, err := svc.GetTab(ctx, &pb.GetTabRequest{Identity: api.IdentityPB(alice)})
	require.NoError(t, err)
	assert.Equal(t, 18.5, tab.Tab.Total)
}

func TestRespondDrink_DeclineDoesNotCharge(t *testing.T) {
	ctx := context.Background()
	svc, a := setupService(t)

	d := send(t, svc, alice, "Bob", "Whisky", false)
	resp, err := svc.RespondDrink(ctx, &pb.RespondDrinkRequest{Identity: api.IdentityPB(bob), DrinkId: d.Id})
	require.NoError(t, err)
	assert.Equal(t, string(model.GiftDeclined), resp.Drink.Status)
	assert.Nil(t, resp.SenderTab)

	tab, err := svc.GetTab(ctx, &pb.GetTabRequest{Identity: api.IdentityPB(alice)})
	require.NoError(t, err)
	assert.Zero(t, tab.Tab.Total)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.Drinks.WithLabelValues("declined")))
}

func TestTab_AccumulatesRounded(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	for _, drink := range []string{"Caipirinha", "Gin Tonic"} {
		d := send(t, svc, alice, "Bob", drink, false)
		_, err := svc.RespondDrink(ctx, &pb.RespondDrinkRequest{Identity: api.IdentityPB(bob), DrinkId: d.Id, Accept: true})
		require.NoError(t, err)
	}

	tab, err := svc.GetTab(ctx, &pb.GetTabRequest{Identity: api.IdentityPB(alice)})
	require.NoError(t, err)
	assert.Equal(t, 43.4, tab.Tab.Total)
	assert.Equal(t, int32(2), tab.Tab.Drinks)
}

func TestListDrinks_MasksAnonymousSender(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	send(t, svc, alice, "Bob", "Wine", true)
	send(t, svc, bob, "Alice", "Soda", false)

	bobView, err := svc.ListDrinks(ctx, &pb.ListDrinksRequest{Identity: api.IdentityPB(bob)})
	require.NoError(t, err)
	require.Len(t, bobView.Incoming, 1)
	assert.Equal(t, "Anonymous", bobView.Incoming[0].FromName)
	assert.Empty(t, bobView.Incoming[0].FromTable)
	require.Len(t, bobView.Outgoing, 1)
	assert.Equal(t, "Soda", bobView.Outgoing[0].DrinkType)

	// the sender still sees their own anonymous gift
	aliceView, err := svc.ListDrinks(ctx, &pb.ListDrinksRequest{Identity: api.IdentityPB(alice)})
	require.NoError(t, err)
	require.Len(t, aliceView.Outgoing, 1)
	assert.Equal(t, "Alice", aliceView.Outgoing[0].FromName)
	assert.True(t, aliceView.Outgoing[0].Anonymous)
}

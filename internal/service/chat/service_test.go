package chat_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/service/chat"
	tu "github.com/oggyb/barchat/internal/testutil"
)

var (
	alice = model.Identity{Name: "Alice", Table: "5", Status: model.StatusSingle}
	bob   = model.Identity{Name: "Bob", Table: "7", Status: model.StatusSingle}
)

// setupService wires a Chat service over a private store and clock.
func setupService(t *testing.T, mutate ...func(*config.Config)) (*chat.Service, *tu.App) {
	t.Helper()
	a := tu.NewApp(t, mutate...)
	return chat.NewChatService(a.AppContext), a
}

func TestSendMessage_StoresSanitizedText(t *testing.T) {
	ctx := context.Background()
	svc, a := setupService(t)

	resp, err := svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: "  hi <b>there</b>  "})
	require.NoError(t, err)

	assert.Equal(t, "hi bthere/b", resp.Message.Text)
	assert.Equal(t, "Alice", resp.Message.AuthorName)
	assert.Equal(t, "5", resp.Message.AuthorTable)
	assert.Equal(t, tu.Night.UnixMilli(), resp.Message.CreatedAtUnixMs)
	assert.Equal(t, int32(19), resp.Remaining)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.MessagesSent))
}

func TestSendMessage_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	cases := map[string]*pb.SendMessageRequest{
		"empty":       {Identity: api.IdentityPB(alice), Text: "   "},
		"too long":    {Identity: api.IdentityPB(alice), Text: strings.Repeat("ab", 251)},
		"spam":        {Identity: api.IdentityPB(alice), Text: "heyyyyyyyyyyyy"},
		"no identity": {Text: "hello"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SendMessage(ctx, req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestSendMessage_MarkupOnlyIsNotStored(t *testing.T) {
	ctx := context.Background()
	svc, a := setupService(t)

	for _, text := range []string{"<>", "javascript:", "<<< >>>", "onclick="} {
		_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: text})
		assert.Equal(t, codes.InvalidArgument, status.Code(err), text)
	}

	stored, err := a.Repos.Messages.Values(ctx, docstore.Query{})
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Zero(t, testutil.ToFloat64(a.Metrics.MessagesSent))
}

// A rejected message must not eat into the window.
func TestSendMessage_RateLimit(t *testing.T) {
	ctx := context.Background()
	svc, a := setupService(t, func(c *config.Config) {
		c.RateLimit.Rules[config.LimiterMessages] = config.RateRule{Max: 2, Window: time.Minute}
	})

	_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: ""})
	require.Error(t, err)

	for i := 0; i < 2; i++ {
		_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: "round two"})
		require.NoError(t, err)
	}

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: "one more"})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.RateLimited.WithLabelValues(config.LimiterMessages)))

	// another patron has their own window
	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(bob), Text: "cheers"})
	require.NoError(t, err)

	a.Clock.Advance(time.Minute)
	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: "back again"})
	assert.NoError(t, err)
}

func TestListMessages_TableAndPagination(t *testing.T) {
	ctx := context.Background()
	svc, a := setupService(t)

	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: text})
		require.NoError(t, err)
		a.Clock.Advance(time.Second)
	}
	_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(bob), Text: "other table"})
	require.NoError(t, err)

	resp, err := svc.ListMessages(ctx, &pb.ListMessagesRequest{Table: "5", Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "three", resp.Messages[0].Text)
	assert.Equal(t, "two", resp.Messages[1].Text)
	require.NotNil(t, resp.NextPaginationToken)

	resp, err = svc.ListMessages(ctx, &pb.ListMessagesRequest{Table: "5", Limit: 2, PaginationToken: resp.NextPaginationToken})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "one", resp.Messages[0].Text)
	assert.Nil(t, resp.NextPaginationToken)

	all, err := svc.ListMessages(ctx, &pb.ListMessagesRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Messages, 4)
}

func TestListMessages_BadToken(t *testing.T) {
	svc, _ := setupService(t)
	bad := "%%%"
	_, err := svc.ListMessages(context.Background(), &pb.ListMessagesRequest{PaginationToken: &bad})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestWatchMessages_StreamsSnapshots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, _ := setupService(t)

	stream := tu.NewStream[pb.MessagesSnapshot](ctx)
	done := make(chan error, 1)
	go func() { done <- svc.WatchMessages(&pb.WatchMessagesRequest{Table: "5"}, stream) }()

	first := stream.Until(t, func(s *pb.MessagesSnapshot) bool { return !s.Loading })
	assert.Empty(t, first.Messages)
	assert.Equal(t, "active", first.State)

	_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: "anyone here?"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(bob), Text: "not your table"})
	require.NoError(t, err)

	snap := stream.Until(t, func(s *pb.MessagesSnapshot) bool { return len(s.Messages) == 1 })
	assert.Equal(t, "anyone here?", snap.Messages[0].Text)
	assert.False(t, snap.Degraded)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end")
	}
}

func TestWatchMessages_RealtimeDisabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, _ := setupService(t, func(c *config.Config) { c.Realtime.Disabled = true })

	_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{Identity: api.IdentityPB(alice), Text: "already here"})
	require.NoError(t, err)

	stream := tu.NewStream[pb.MessagesSnapshot](ctx)
	go func() { _ = svc.WatchMessages(&pb.WatchMessagesRequest{}, stream) }()

	snap := stream.Next(t)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Messages)
}

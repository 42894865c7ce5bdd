package chat

import (
	"context"

	"google.golang.org/grpc"

	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/app"
	"github.com/oggyb/barchat/internal/config"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/realtime"
	"github.com/oggyb/barchat/internal/repository"
	"github.com/oggyb/barchat/internal/service/live"
	"github.com/oggyb/barchat/internal/validation"
)

// Service implements the Chat gRPC API: the public bar chat, optionally
// narrowed to one table.
type Service struct {
	appCtx   *app.AppContext
	messages *repository.MessageRepository

	pb.UnimplementedChatServer
}

func NewChatService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		messages: appCtx.Repos.Messages,
	}
}

// SendMessage posts a message to the bar chat.
//
// Behavior:
//   - The text is validated and sanitized first; a rejected message does
//     not count against the limiter.
//   - The messages limiter is keyed by identity.
//   - The stored text is the sanitized one.
func (s *Service) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	author := api.Identity(req.GetIdentity())
	s.appCtx.Logger.Debug("SendMessage called", "author", author.Name, "table", author.Table)

	if errs := validation.IdentityErrors(author); len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}

	res := validation.ValidateMessage(req.GetText())
	if !res.Valid {
		return nil, svcErr.Map(svcErr.Validation(res.Reason))
	}

	if err := s.appCtx.Allow(ctx, config.LimiterMessages, author.Key()); err != nil {
		return nil, svcErr.Map(err)
	}

	msg := model.Message{
		Text:        res.Text,
		AuthorName:  author.Name,
		AuthorTable: author.Table,
		CreatedAt:   s.appCtx.Now(),
	}
	id, err := s.messages.Append(ctx, msg)
	if err != nil {
		s.appCtx.Logger.Error("append message failed", "author", author.Key(), "err", err)
		return nil, svcErr.Map(err)
	}
	s.appCtx.Metrics.MessagesSent.Inc()

	remaining, err := s.appCtx.Limiters.Get(config.LimiterMessages).Remaining(ctx, author.Key())
	if err != nil {
		s.appCtx.Logger.Warn("remaining quota unavailable", "err", err)
	}

	return &pb.SendMessageResponse{Message: toMessage(id, msg), Remaining: int32(remaining)}, nil
}

// ListMessages returns one page of the chat, newest first.
//
// Example:
//
//	svc.ListMessages(ctx, &pb.ListMessagesRequest{Table: "5", Limit: 20})
func (s *Service) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	s.appCtx.Logger.Debug("ListMessages called", "table", req.GetTable(), "limit", req.GetLimit(), "token", req.GetPaginationToken())

	page, next, err := s.messages.ListPage(ctx, req.GetTable(), req.PaginationToken, int(req.GetLimit()))
	if err != nil {
		s.appCtx.Logger.Error("ListPage failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMessagesResponse{Messages: make([]*pb.Message, 0, len(page)), NextPaginationToken: next}
	for _, e := range page {
		resp.Messages = append(resp.Messages, toMessage(e.ID, e.Data))
	}
	return resp, nil
}

// WatchMessages streams the chat in creation order. Every message is a
// full snapshot; when the listener fails the last good messages are sent
// again with Degraded set.
func (s *Service) WatchMessages(req *pb.WatchMessagesRequest, stream grpc.ServerStreamingServer[pb.MessagesSnapshot]) error {
	ctx := stream.Context()
	s.appCtx.Logger.Debug("WatchMessages opened", "table", req.GetTable())

	mb := live.NewMailbox[*pb.MessagesSnapshot]()
	sub := s.messages.Watch(ctx, repository.TableQuery(req.GetTable()), s.appCtx.RealtimeOptions(),
		func(snap realtime.Snapshot[model.Message]) { mb.Put(toSnapshot(snap)) },
	)
	defer sub.Close()

	return live.Pump(ctx, mb, stream.Send)
}

func toSnapshot(snap realtime.Snapshot[model.Message]) *pb.MessagesSnapshot {
	out := &pb.MessagesSnapshot{
		Messages: make([]*pb.Message, 0, len(snap.Records)),
		Loading:  snap.Loading,
		Degraded: snap.Degraded(),
		State:    snap.State.String(),
	}
	for _, r := range snap.Records {
		out.Messages = append(out.Messages, toMessage(r.ID, r.Data))
	}
	if snap.Err != nil {
		out.Error = snap.Err.Error()
	}
	return out
}

func toMessage(id string, m model.Message) *pb.Message {
	return &pb.Message{
		Id:              id,
		Text:            m.Text,
		AuthorName:      m.AuthorName,
		AuthorTable:     m.AuthorTable,
		CreatedAtUnixMs: api.UnixMilli(m.CreatedAt),
	}
}

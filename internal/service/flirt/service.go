package flirt

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/grpc"

	"github.com/oggyb/barchat/internal/aggregate"
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

// Service implements the Flirt gRPC API: likes, matches and the private
// chats matches unlock.
type Service struct {
	appCtx  *app.AppContext
	likes   *repository.LikeRepository
	private *repository.PrivateMessageRepository

	pb.UnimplementedFlirtServer
}

func NewFlirtService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:  appCtx,
		likes:   appCtx.Repos.Likes,
		private: appCtx.Repos.Private,
	}
}

// Like records a like from the caller to req.ToName and reports whether it
// completed a match.
//
// Behavior:
//   - Liking yourself is rejected. Names compare case-sensitively, so
//     "alice" is not "Alice".
//   - The likes limiter is keyed by identity.
//   - A second like of the same patron → AlreadyExists, without spending
//     quota.
//   - Matched is true when req.ToName already liked the caller.
//
// Example:
//
//	svc.Like(ctx, &pb.LikeRequest{Identity: alice, ToName: "Bob"})
func (s *Service) Like(ctx context.Context, req *pb.LikeRequest) (*pb.LikeResponse, error) {
	who, to := api.Identity(req.GetIdentity()), req.GetToName()
	s.appCtx.Logger.Debug("Like called", "from", who.Name, "to", to)

	if err := checkPeer(who, to); err != nil {
		return nil, svcErr.Map(err)
	}
	if to == who.Name {
		return nil, svcErr.Map(svcErr.Validation("cannot like yourself"))
	}

	if liked, err := s.likes.HasLiked(ctx, who.Name, to); err != nil {
		return nil, svcErr.Map(err)
	} else if liked {
		return nil, svcErr.AlreadyExists(fmt.Sprintf("you already liked %s", to))
	}

	if err := s.appCtx.Allow(ctx, config.LimiterLikes, who.Key()); err != nil {
		return nil, svcErr.Map(err)
	}

	toTable := req.GetToTable()
	if toTable == "" {
		dir, err := s.appCtx.Repos.Users.Directory(ctx)
		if err != nil {
			s.appCtx.Logger.Warn("directory lookup failed", "err", err)
		} else if id, ok := dir[to]; ok {
			toTable = id.Table
		}
	}

	edge := model.LikeEdge{
		From:      who.Name,
		FromTable: who.Table,
		To:        to,
		ToTable:   toTable,
		CreatedAt: s.appCtx.Now(),
	}
	if err := s.likes.Create(ctx, edge); err != nil {
		if errors.Is(err, svcErr.ErrAlreadyExists) {
			return nil, svcErr.AlreadyExists(fmt.Sprintf("you already liked %s", to))
		}
		s.appCtx.Logger.Error("create like failed", "from", edge.From, "to", edge.To, "err", err)
		return nil, svcErr.Map(err)
	}
	s.appCtx.Metrics.Likes.Inc()

	resp := &pb.LikeResponse{}
	mutual, err := s.likes.HasLiked(ctx, to, who.Name)
	if err != nil {
		s.appCtx.Logger.Warn("mutual check failed", "err", err)
	}
	if mutual {
		resp.Matched = true
		resp.ChatId = model.ChatID(who.Name, to)
		s.appCtx.Metrics.Matches.Inc()
		s.appCtx.Logger.Info("match", "a", who.Name, "b", to)
	}

	remaining, err := s.appCtx.Limiters.Get(config.LimiterLikes).Remaining(ctx, who.Key())
	if err != nil {
		s.appCtx.Logger.Warn("remaining quota unavailable", "err", err)
	}
	resp.Remaining = int32(remaining)
	return resp, nil
}

// ListMatches returns the caller's likes in both directions and their
// intersection.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	who := api.Identity(req.GetIdentity())
	s.appCtx.Logger.Debug("ListMatches called", "name", who.Name)

	if errs := validation.IdentityErrors(who); len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}
	name := who.Name

	sent, err := s.likes.SentBy(ctx, name)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	received, err := s.likes.ReceivedBy(ctx, name)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	count, err := s.likes.CountLikers(ctx, name)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	liked := aggregate.LikedNames(sent)
	likedBy := aggregate.LikerNames(received)
	return &pb.ListMatchesResponse{
		Matches:      toMatches(name, aggregate.Matches(liked, likedBy)),
		Liked:        liked,
		LikedBy:      likedBy,
		LikedByCount: count,
	}, nil
}

// WatchMatches streams the caller's matches.
//
// Sent and received likes are two independent subscriptions; the
// intersection is recomputed whenever either side changes. A failing side
// keeps its last good edges and marks the snapshot degraded.
func (s *Service) WatchMatches(req *pb.WatchMatchesRequest, stream grpc.ServerStreamingServer[pb.MatchesSnapshot]) error {
	ctx := stream.Context()
	who := api.Identity(req.GetIdentity())
	name := who.Name
	s.appCtx.Logger.Debug("WatchMatches opened", "name", name)

	if errs := validation.IdentityErrors(who); len(errs) > 0 {
		return svcErr.Map(svcErr.Validation(errs...))
	}

	var (
		mu                     sync.Mutex
		sent, received         realtime.Snapshot[model.LikeEdge]
		haveSent, haveReceived bool
		group                  realtime.Group
		mb                     = live.NewMailbox[*pb.MatchesSnapshot]()
	)
	recompute := func() {
		if !haveSent || !haveReceived {
			return
		}
		liked := aggregate.LikedNames(sent.Values())
		likedBy := aggregate.LikerNames(received.Values())
		mb.Put(&pb.MatchesSnapshot{
			Matches:  toMatches(name, aggregate.Matches(liked, likedBy)),
			Loading:  sent.Loading || received.Loading,
			Degraded: sent.Degraded() || received.Degraded(),
		})
	}

	opts := s.appCtx.RealtimeOptions()
	sentSub := s.likes.Watch(ctx, repository.SentQuery(name), opts, func(snap realtime.Snapshot[model.LikeEdge]) {
		mu.Lock()
		defer mu.Unlock()
		sent, haveSent = snap, true
		recompute()
	})
	group.Add(sentSub.Close)
	recvSub := s.likes.Watch(ctx, repository.ReceivedQuery(name), opts, func(snap realtime.Snapshot[model.LikeEdge]) {
		mu.Lock()
		defer mu.Unlock()
		received, haveReceived = snap, true
		recompute()
	})
	group.Add(recvSub.Close)
	defer group.Close()

	return live.Pump(ctx, mb, stream.Send)
}

// SendPrivate sends a message in the private chat of two matched patrons.
func (s *Service) SendPrivate(ctx context.Context, req *pb.SendPrivateRequest) (*pb.SendPrivateResponse, error) {
	who, to := api.Identity(req.GetIdentity()), req.GetToName()
	s.appCtx.Logger.Debug("SendPrivate called", "from", who.Name, "to", to)

	if err := checkPeer(who, to); err != nil {
		return nil, svcErr.Map(err)
	}
	res := validation.ValidateMessage(req.GetText())
	if !res.Valid {
		return nil, svcErr.Map(svcErr.Validation(res.Reason))
	}
	if err := s.requireMatch(ctx, who.Name, to); err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.appCtx.Allow(ctx, config.LimiterMessages, who.Key()); err != nil {
		return nil, svcErr.Map(err)
	}

	pm := model.PrivateMessage{
		From:      who.Name,
		To:        to,
		Text:      res.Text,
		CreatedAt: s.appCtx.Now(),
	}
	id, err := s.private.Send(ctx, pm)
	if err != nil {
		s.appCtx.Logger.Error("send private failed", "err", err)
		return nil, svcErr.Map(err)
	}
	pm.ChatID = model.ChatID(pm.From, pm.To)
	return &pb.SendPrivateResponse{Message: toPrivate(id, pm)}, nil
}

// ListPrivate returns the chat between the caller and req.With, oldest
// first. Only matched patrons can read it.
func (s *Service) ListPrivate(ctx context.Context, req *pb.ListPrivateRequest) (*pb.ListPrivateResponse, error) {
	who, with := api.Identity(req.GetIdentity()), req.GetWith()
	s.appCtx.Logger.Debug("ListPrivate called", "name", who.Name, "with", with)

	if err := checkPeer(who, with); err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.requireMatch(ctx, who.Name, with); err != nil {
		return nil, svcErr.Map(err)
	}

	entries, err := s.private.Conversation(ctx, who.Name, with)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListPrivateResponse{
		ChatId:   model.ChatID(who.Name, with),
		Messages: make([]*pb.PrivateMessage, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Messages = append(resp.Messages, toPrivate(e.ID, e.Data))
	}
	return resp, nil
}

// requireMatch fails with ErrPermissionDenied unless a and b liked each other.
func (s *Service) requireMatch(ctx context.Context, a, b string) error {
	ab, err := s.likes.HasLiked(ctx, a, b)
	if err != nil {
		return err
	}
	ba, err := s.likes.HasLiked(ctx, b, a)
	if err != nil {
		return err
	}
	if !ab || !ba {
		return fmt.Errorf("%w: %s and %s are not matched", svcErr.ErrPermissionDenied, a, b)
	}
	return nil
}

func checkPeer(id model.Identity, peer string) error {
	errs := validation.IdentityErrors(id)
	if peer == "" {
		errs = append(errs, "recipient is required")
	}
	if len(errs) > 0 {
		return svcErr.Validation(errs...)
	}
	return nil
}

func toMatches(self string, names []string) []*pb.Match {
	out := make([]*pb.Match, 0, len(names))
	for _, n := range names {
		out = append(out, &pb.Match{Name: n, ChatId: model.ChatID(self, n)})
	}
	return out
}

func toPrivate(id string, pm model.PrivateMessage) *pb.PrivateMessage {
	return &pb.PrivateMessage{
		Id:              id,
		ChatId:          pm.ChatID,
		FromName:        pm.From,
		ToName:          pm.To,
		Text:            pm.Text,
		CreatedAtUnixMs: api.UnixMilli(pm.CreatedAt),
	}
}

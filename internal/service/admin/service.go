package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oggyb/barchat/internal/aggregate"
	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/app"
	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/validation"
)

// Service implements the Admin gRPC API. Every method except Login runs
// behind the admin token interceptor.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedAdminServer
}

func NewAdminService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// Login trades the admin passphrase for a bearer token.
func (s *Service) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, exp, err := s.appCtx.Admin.Login(req.GetPassphrase())
	if err != nil {
		s.appCtx.Logger.Warn("admin login refused", "err", err)
		return nil, svcErr.Map(err)
	}
	s.appCtx.Logger.Info("admin logged in", "expires_at", exp)
	return &pb.LoginResponse{Token: token, ExpiresAtUnixMs: exp.UnixMilli()}, nil
}

// Dashboard summarizes the night: activity rankings, the vote tally, raw
// counts and the raffle.
func (s *Service) Dashboard(ctx context.Context, _ *pb.DashboardRequest) (*pb.DashboardResponse, error) {
	d, err := s.load(ctx)
	if err != nil {
		s.appCtx.Logger.Error("dashboard load failed", "err", err)
		return nil, svcErr.Map(err)
	}
	pending := 0
	for _, g := range d.gifts {
		if g.Status == model.GiftPending {
			pending++
		}
	}

	w := s.appCtx.Config.Scores
	resp := &pb.DashboardResponse{
		VoteTally:     api.VoteCounts(aggregate.VoteTally(d.votes)),
		ActivePatrons: int32(len(d.active)),
		Messages:      int32(len(d.messages)),
		Likes:         int32(len(d.likes)),
		Drinks:        int32(len(d.gifts)),
		PendingDrinks: int32(pending),
		Votes:         int32(len(d.votes)),
		Raffle:        api.RaffleState(d.raffle, nil),
	}
	for _, t := range aggregate.TableActivity(d.messages, d.likes, d.votes, d.dir, w) {
		resp.TableActivity = append(resp.TableActivity, &pb.TableScore{Table: t.Table, Score: t.Score})
	}
	for _, u := range aggregate.UserRanking(d.messages, d.likes, d.votes, d.dir, w) {
		resp.UserRanking = append(resp.UserRanking, &pb.UserScore{
			Name:   u.Name,
			Table:  u.Table,
			Status: u.Status,
			Score:  u.Score,
		})
	}
	return resp, nil
}

type snapshot struct {
	messages []model.Message
	likes    []model.LikeEdge
	votes    []model.Vote
	gifts    []model.DrinkGift
	active   []model.PresenceRecord
	dir      aggregate.Directory
	raffle   model.RaffleState
}

func (s *Service) load(ctx context.Context) (snapshot, error) {
	repos := s.appCtx.Repos
	var (
		d   snapshot
		err error
	)
	if d.messages, err = repos.Messages.Values(ctx, docstore.Query{}); err != nil {
		return d, fmt.Errorf("messages: %w", err)
	}
	if d.likes, err = repos.Likes.Values(ctx, docstore.Query{}); err != nil {
		return d, fmt.Errorf("likes: %w", err)
	}
	if d.votes, err = repos.Votes.All(ctx); err != nil {
		return d, fmt.Errorf("votes: %w", err)
	}
	if d.gifts, err = repos.Drinks.Gifts.Values(ctx, docstore.Query{}); err != nil {
		return d, fmt.Errorf("drinks: %w", err)
	}
	if d.active, err = s.appCtx.Presence.ListActive(ctx); err != nil {
		return d, fmt.Errorf("presence: %w", err)
	}
	if d.dir, err = repos.Users.Directory(ctx); err != nil {
		return d, fmt.Errorf("directory: %w", err)
	}
	if d.raffle, err = repos.Raffle.State(ctx); err != nil {
		return d, fmt.Errorf("raffle: %w", err)
	}
	return d, nil
}

// DrawRaffle picks a winner among the current participants.
func (s *Service) DrawRaffle(ctx context.Context, _ *pb.DrawRaffleRequest) (*pb.RaffleStateResponse, error) {
	state, err := s.appCtx.Repos.Raffle.State(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	next, err := aggregate.Draw(state, s.appCtx.Rand, s.appCtx.Now())
	if errors.Is(err, aggregate.ErrNoParticipants) {
		return nil, svcErr.Map(svcErr.Invariant("nobody has joined the raffle"))
	}
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if err := s.appCtx.Repos.Raffle.Save(ctx, next); err != nil {
		s.appCtx.Logger.Error("raffle save failed", "err", err)
		return nil, svcErr.Map(err)
	}
	s.appCtx.Logger.Info("raffle drawn", "winner", next.Winner.Name, "table", next.Winner.Table, "participants", len(next.Participants))
	return api.RaffleState(next, nil), nil
}

// ResetRaffle clears participants and the current winner. History stays.
func (s *Service) ResetRaffle(ctx context.Context, _ *pb.ResetRaffleRequest) (*pb.RaffleStateResponse, error) {
	state, err := s.appCtx.Repos.Raffle.State(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	next := aggregate.Reset(state)
	if err := s.appCtx.Repos.Raffle.Save(ctx, next); err != nil {
		return nil, svcErr.Map(err)
	}
	s.appCtx.Logger.Info("raffle reset", "draws", len(next.History))
	return api.RaffleState(next, nil), nil
}

func (s *Service) AddMusic(ctx context.Context, req *pb.AddMusicRequest) (*pb.AddMusicResponse, error) {
	m := model.Music{
		Name:   strings.TrimSpace(validation.Sanitize(req.GetName())),
		Artist: strings.TrimSpace(validation.Sanitize(req.GetArtist())),
	}
	if m.Name == "" {
		return nil, svcErr.Map(svcErr.Validation("music name is required"))
	}

	id, err := s.appCtx.Repos.Votes.AddMusic(ctx, m)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.AddMusicResponse{Music: api.MusicItem(id, m)}, nil
}

// ResetVotes deletes every vote so patrons can vote again.
func (s *Service) ResetVotes(ctx context.Context, _ *pb.ResetVotesRequest) (*pb.ResetVotesResponse, error) {
	n, err := s.appCtx.Repos.Votes.Reset(ctx)
	if err != nil {
		s.appCtx.Logger.Error("vote reset failed", "err", err)
		return nil, svcErr.Map(err)
	}
	s.appCtx.Logger.Info("votes reset", "removed", n)
	return &pb.ResetVotesResponse{Removed: int32(n)}, nil
}

package voting

import (
	"context"
	"errors"
	"fmt"

	"github.com/oggyb/barchat/internal/aggregate"
	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/app"
	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/repository"
	"github.com/oggyb/barchat/internal/validation"
)

// Service implements the Voting gRPC API: one music vote per patron.
type Service struct {
	appCtx *app.AppContext
	votes  *repository.VoteRepository

	pb.UnimplementedVotingServer
}

func NewVotingService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx, votes: appCtx.Repos.Votes}
}

// ListMusic returns the catalog by name.
func (s *Service) ListMusic(ctx context.Context, _ *pb.ListMusicRequest) (*pb.ListMusicResponse, error) {
	entries, err := s.votes.Catalog(ctx)
	if err != nil {
		s.appCtx.Logger.Error("Catalog failed", "err", err)
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListMusicResponse{Music: make([]*pb.MusicItem, 0, len(entries))}
	for _, e := range entries {
		resp.Music = append(resp.Music, api.MusicItem(e.ID, e.Data))
	}
	return resp, nil
}

// Vote casts the caller's single vote.
//
// Behavior:
//   - The music id must be in the catalog.
//   - A patron who already voted gets AlreadyExists without spending quota.
//   - The votes limiter is keyed by identity.
func (s *Service) Vote(ctx context.Context, req *pb.VoteRequest) (*pb.VoteResponse, error) {
	who := api.Identity(req.GetIdentity())
	s.appCtx.Logger.Debug("Vote called", "voter", who.Key(), "music", req.GetMusicId())

	errs := validation.IdentityErrors(who)
	if req.GetMusicId() == "" {
		errs = append(errs, "music id is required")
	}
	if len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}

	music, err := s.votes.Music.Get(ctx, req.GetMusicId())
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, svcErr.Map(svcErr.Validation(fmt.Sprintf("unknown music %q", req.GetMusicId())))
	}
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if _, voted, err := s.votes.ByVoter(ctx, who); err != nil {
		return nil, svcErr.Map(err)
	} else if voted {
		return nil, svcErr.AlreadyExists("you already voted")
	}

	if err := s.appCtx.Allow(ctx, config.LimiterVotes, who.Key()); err != nil {
		return nil, svcErr.Map(err)
	}

	vote := model.Vote{
		MusicID:    music.ID,
		MusicName:  music.Data.Name,
		VoterName:  who.Name,
		VoterTable: who.Table,
		CreatedAt:  s.appCtx.Now(),
	}
	if err := s.votes.Cast(ctx, vote); err != nil {
		s.appCtx.Logger.Warn("cast vote failed", "voter", who.Key(), "err", err)
		return nil, svcErr.Map(err)
	}
	s.appCtx.Metrics.Votes.Inc()

	remaining, err := s.appCtx.Limiters.Get(config.LimiterVotes).Remaining(ctx, who.Key())
	if err != nil {
		s.appCtx.Logger.Warn("remaining quota unavailable", "err", err)
	}
	return &pb.VoteResponse{Vote: toVote(vote), Remaining: int32(remaining)}, nil
}

// Results is the top of the tally with each entry's share of all votes.
func (s *Service) Results(ctx context.Context, _ *pb.ResultsRequest) (*pb.ResultsResponse, error) {
	votes, err := s.votes.All(ctx)
	if err != nil {
		s.appCtx.Logger.Error("load votes failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.ResultsResponse{
		Results:    api.VoteCounts(aggregate.VoteTally(votes)),
		TotalVotes: int32(len(votes)),
	}, nil
}

func (s *Service) MyVote(ctx context.Context, req *pb.MyVoteRequest) (*pb.MyVoteResponse, error) {
	who := api.Identity(req.GetIdentity())
	if errs := validation.IdentityErrors(who); len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}
	vote, ok, err := s.votes.ByVoter(ctx, who)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if !ok {
		return &pb.MyVoteResponse{}, nil
	}
	return &pb.MyVoteResponse{Voted: true, Vote: toVote(vote)}, nil
}

func toVote(v model.Vote) *pb.Vote {
	return &pb.Vote{
		MusicId:         v.MusicID,
		MusicName:       v.MusicName,
		VoterName:       v.VoterName,
		VoterTable:      v.VoterTable,
		CreatedAtUnixMs: api.UnixMilli(v.CreatedAt),
	}
}

package raffle

import (
	"context"
	"errors"

	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/app"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/repository"
	"github.com/oggyb/barchat/internal/validation"
)

// Service implements the Raffle gRPC API for patrons. Draws and resets are
// admin operations.
type Service struct {
	appCtx *app.AppContext
	raffle *repository.RaffleRepository

	pb.UnimplementedRaffleServer
}

func NewRaffleService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx, raffle: appCtx.Repos.Raffle}
}

// Join enters the caller in the current raffle, once.
func (s *Service) Join(ctx context.Context, req *pb.JoinRaffleRequest) (*pb.RaffleStateResponse, error) {
	who := api.Identity(req.GetIdentity())
	s.appCtx.Logger.Debug("Join called", "id", who.Key())

	if errs := validation.IdentityErrors(who); len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}

	state, err := s.raffle.Join(ctx, who, s.appCtx.Now())
	if errors.Is(err, svcErr.ErrAlreadyExists) {
		return nil, svcErr.AlreadyExists("you are already in the raffle")
	}
	if err != nil {
		s.appCtx.Logger.Error("raffle join failed", "id", who.Key(), "err", err)
		return nil, svcErr.Map(err)
	}
	return api.RaffleState(state, &who), nil
}

// State returns the current raffle. Joined is filled only when the request
// names an identity.
func (s *Service) State(ctx context.Context, req *pb.RaffleStateRequest) (*pb.RaffleStateResponse, error) {
	state, err := s.raffle.State(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	var who *model.Identity
	if req.GetIdentity() != nil {
		id := api.Identity(req.GetIdentity())
		who = &id
	}
	return api.RaffleState(state, who), nil
}

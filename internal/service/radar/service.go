package radar

import (
	"context"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/app"
	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
	"github.com/oggyb/barchat/internal/presence"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/realtime"
	"github.com/oggyb/barchat/internal/service/live"
	"github.com/oggyb/barchat/internal/validation"
)

// Service implements the Radar gRPC API: entering the bar, staying visible
// while a session is open, and leaving.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedRadarServer
}

func NewRadarService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// Enter validates the entry form and registers the patron as present.
//
// Behavior:
//   - Name and table are trimmed; names keep their case.
//   - Every form error is reported at once.
//   - Presence is replaced, the directory entry merged.
func (s *Service) Enter(ctx context.Context, req *pb.EnterRequest) (*pb.EnterResponse, error) {
	s.appCtx.Logger.Debug("Enter called", "name", req.GetName(), "table", req.GetTable())

	res := validation.ValidateUserInput(req.GetName(), req.GetTable(), req.GetStatus())
	if !res.Valid {
		return nil, svcErr.Map(svcErr.Validation(res.Errors...))
	}

	id := model.Identity{
		Name:   strings.TrimSpace(req.GetName()),
		Table:  strings.TrimSpace(req.GetTable()),
		Status: model.Status(req.GetStatus()),
	}
	if err := s.appCtx.Presence.Register(ctx, id); err != nil {
		s.appCtx.Logger.Error("register presence failed", "id", id.Key(), "err", err)
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("patron entered", "id", id.Key())
	return &pb.EnterResponse{Identity: api.IdentityPB(id)}, nil
}

// Session keeps the caller visible and streams who else is around.
//
// While the stream is open a heartbeat refreshes the caller's lastActive.
// Snapshots are recomputed on every presence change and once per heartbeat
// interval, so patrons whose heartbeat stopped age out without any write.
// Closing the stream stops the heartbeat.
func (s *Service) Session(req *pb.SessionRequest, stream grpc.ServerStreamingServer[pb.RadarSnapshot]) error {
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()
	id := api.Identity(req.GetIdentity())
	s.appCtx.Logger.Debug("Session opened", "id", id.Key())

	if errs := validation.IdentityErrors(id); len(errs) > 0 {
		return svcErr.Map(svcErr.Validation(errs...))
	}

	if err := s.appCtx.Presence.Touch(ctx, id); err != nil {
		s.appCtx.Logger.Warn("initial heartbeat failed", "id", id.Key(), "err", err)
	}
	hb := s.appCtx.Presence.StartHeartbeat(ctx, id)
	defer hb.Stop()

	var (
		mu   sync.Mutex
		last realtime.Snapshot[model.PresenceRecord]
	)
	mb := live.NewMailbox[*pb.RadarSnapshot]()
	publish := func() {
		mu.Lock()
		snap := last
		mu.Unlock()
		mb.Put(s.toSnapshot(snap))
	}

	sub := s.appCtx.Repos.Users.PresenceCollection().Watch(ctx,
		docstore.Query{}.Order("lastActive", true),
		s.appCtx.RealtimeOptions(),
		func(snap realtime.Snapshot[model.PresenceRecord]) {
			mu.Lock()
			last = snap
			mu.Unlock()
			publish()
		},
	)
	defer sub.Close()

	interval := s.appCtx.Config.Presence.HeartbeatInterval
	if interval <= 0 {
		interval = presence.DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				publish()
			}
		}
	}()

	err := live.Pump(ctx, mb, stream.Send)
	s.appCtx.Logger.Debug("Session closed", "id", id.Key(), "err", err)
	return err
}

// ListActive returns the patrons active right now, most recent first.
func (s *Service) ListActive(ctx context.Context, _ *pb.ListActiveRequest) (*pb.ListActiveResponse, error) {
	recs, err := s.appCtx.Presence.ListActive(ctx)
	if err != nil {
		s.appCtx.Logger.Error("ListActive failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.ListActiveResponse{Active: toPatrons(recs)}, nil
}

// UpdateProfile changes status and interests. Omitted fields stay as they
// are; an empty interest list counts as omitted.
func (s *Service) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	id := api.Identity(req.GetIdentity())
	s.appCtx.Logger.Debug("UpdateProfile called", "id", id.Key(), "status", req.GetStatus())

	if errs := validation.IdentityErrors(id); len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}
	status := model.Status(req.GetStatus())
	if status != "" && !status.Valid() {
		return nil, svcErr.Map(svcErr.Validation("status must be one of Single, Taken, Married"))
	}

	var interests []string
	if len(req.GetInterests()) > 0 {
		interests = make([]string, 0, len(req.GetInterests()))
		for _, in := range req.GetInterests() {
			if in = validation.Sanitize(in); in != "" {
				interests = append(interests, in)
			}
		}
	}

	if err := s.appCtx.Repos.Users.UpdateProfile(ctx, id, status, interests); err != nil {
		s.appCtx.Logger.Error("UpdateProfile failed", "id", id.Key(), "err", err)
		return nil, svcErr.Map(err)
	}

	if status != "" {
		id.Status = status
	}
	return &pb.UpdateProfileResponse{Identity: api.IdentityPB(id)}, nil
}

// Logout stops the caller's heartbeat and purges their presence and chat
// messages. Purge failures are reported, never returned as errors: the
// patron is logged out either way.
func (s *Service) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	id := api.Identity(req.GetIdentity())
	s.appCtx.Logger.Debug("Logout called", "id", id.Key())

	if errs := validation.IdentityErrors(id); len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}

	report := s.appCtx.Presence.Logout(ctx, id)
	resp := &pb.LogoutResponse{
		PresenceDeleted: report.PresenceDeleted,
		MessagesDeleted: int32(report.MessagesDeleted),
	}
	if report.Err != nil {
		resp.PurgeError = report.Err.Error()
	}
	return resp, nil
}

func (s *Service) toSnapshot(snap realtime.Snapshot[model.PresenceRecord]) *pb.RadarSnapshot {
	out := &pb.RadarSnapshot{
		Active:   toPatrons(presence.Active(snap.Values(), s.appCtx.Now(), s.appCtx.Presence.Window())),
		Loading:  snap.Loading,
		Degraded: snap.Degraded(),
		State:    snap.State.String(),
	}
	if snap.Err != nil {
		out.Error = snap.Err.Error()
	}
	return out
}

func toPatrons(recs []model.PresenceRecord) []*pb.Patron {
	out := make([]*pb.Patron, 0, len(recs))
	for _, r := range recs {
		out = append(out, &pb.Patron{
			Name:             r.Name,
			Table:            r.Table,
			Status:           string(r.Status),
			Interests:        r.Interests,
			LastActiveUnixMs: api.UnixMilli(r.LastActive),
		})
	}
	return out
}

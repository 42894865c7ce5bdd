// Package api maps the domain model onto the generated barchat.v1 messages.
// Services convert at their edges with these helpers so the repositories
// never see wire types.
package api

import (
	"strings"
	"time"

	"github.com/oggyb/barchat/internal/aggregate"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
)

// AdminLoginMethod is the one admin call that needs no token.
const AdminLoginMethod = pb.Admin_Login_FullMethodName

// IsAdminMethod reports whether fullMethod belongs to the admin service.
func IsAdminMethod(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/"+pb.Admin_ServiceDesc.ServiceName+"/")
}

// Identity reads a wire identity. A missing one reads as the zero
// identity and fails validation like an empty name would.
func Identity(in *pb.Identity) model.Identity {
	return model.Identity{
		Name:    in.GetName(),
		Table:   in.GetTable(),
		Status:  model.Status(in.GetStatus()),
		IsAdmin: in.GetIsAdmin(),
	}
}

func IdentityPB(id model.Identity) *pb.Identity {
	return &pb.Identity{
		Name:    id.Name,
		Table:   id.Table,
		Status:  string(id.Status),
		IsAdmin: id.IsAdmin,
	}
}

// UnixMilli is t in milliseconds, or 0 for the zero time.
func UnixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func MusicItem(id string, m model.Music) *pb.MusicItem {
	return &pb.MusicItem{Id: id, Name: m.Name, Artist: m.Artist}
}

func VoteCounts(counts []aggregate.VoteCount) []*pb.VoteCount {
	out := make([]*pb.VoteCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, &pb.VoteCount{
			MusicName: c.MusicName,
			Votes:     int32(c.Votes),
			Percent:   c.Percent,
		})
	}
	return out
}

func RaffleEntry(e model.RaffleEntry) *pb.RaffleEntry {
	return &pb.RaffleEntry{Name: e.Name, Table: e.Table, JoinedAtUnixMs: UnixMilli(e.JoinedAt)}
}

// RaffleState renders a raffle document. who, when set, fills Joined.
func RaffleState(state model.RaffleState, who *model.Identity) *pb.RaffleStateResponse {
	resp := &pb.RaffleStateResponse{
		Participants: make([]*pb.RaffleEntry, 0, len(state.Participants)),
		History:      make([]*pb.RaffleDraw, 0, len(state.History)),
		Odds:         aggregate.RaffleOdds(len(state.Participants)),
	}
	for _, p := range state.Participants {
		resp.Participants = append(resp.Participants, RaffleEntry(p))
	}
	if state.Winner != nil {
		resp.Winner = RaffleEntry(*state.Winner)
	}
	for _, d := range state.History {
		resp.History = append(resp.History, &pb.RaffleDraw{
			Winner:           RaffleEntry(d.Winner),
			ParticipantCount: int32(d.ParticipantCount),
			DateUnixMs:       UnixMilli(d.Date),
		})
	}
	if who != nil {
		resp.Joined = state.HasParticipant(*who)
	}
	return resp
}

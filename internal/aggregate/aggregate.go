// Package aggregate turns snapshots of messages, likes, votes and raffle
// state into the derived views shown to patrons and admins.
//
// Every function here is pure: same input, same output, no I/O, and a
// well-formed (possibly empty) result for any input, including missing
// cross-references.
package aggregate

import (
	"errors"
	"math"
	"slices"
	"time"

	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/model"
)

// Unknown annotates users missing from the directory.
const Unknown = "unknown"

const (
	RankingSize = 10
	TallySize   = 5
)

// ErrNoParticipants is returned by Draw for an empty raffle.
var ErrNoParticipants = errors.New("raffle has no participants")

// DefaultWeights are the stock activity weights.
var DefaultWeights = config.Weights{
	TableMessage: 1.0,
	TableLike:    0.5,
	TableVote:    0.3,
	UserMessage:  1.0,
	UserLike:     1.0,
	UserVote:     0.5,
}

// Directory maps a patron name to their current directory entry.
type Directory map[string]model.Identity

// NewDirectory indexes identities by name; later entries win.
func NewDirectory(ids []model.Identity) Directory {
	d := make(Directory, len(ids))
	for _, id := range ids {
		d[id.Name] = id
	}
	return d
}

// Matches returns the names present in both liked and likedBy, in the order
// they first appear in liked, each once.
func Matches(liked, likedBy []string) []string {
	in := make(map[string]struct{}, len(likedBy))
	for _, n := range likedBy {
		in[n] = struct{}{}
	}

	seen := make(map[string]struct{}, len(liked))
	out := []string{}
	for _, n := range liked {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := in[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// LikedNames extracts the distinct targets of the given edges.
func LikedNames(edges []model.LikeEdge) []string {
	return distinct(edges, func(e model.LikeEdge) string { return e.To })
}

// LikerNames extracts the distinct senders of the given edges.
func LikerNames(edges []model.LikeEdge) []string {
	return distinct(edges, func(e model.LikeEdge) string { return e.From })
}

func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// TableScore is one row of the per-table activity board.
type TableScore struct {
	Table string  `json:"table"`
	Score float64 `json:"score"`
}

// TableActivity scores each table from all known activity:
// messages credit the author's table, likes credit both the sender's and
// the receiver's table (looked up in dir; unknown sides credit nothing),
// votes credit the voter's table. Sorted by score descending, ties in
// first-encounter order.
func TableActivity(messages []model.Message, likes []model.LikeEdge, votes []model.Vote, dir Directory, w config.Weights) []TableScore {
	acc := newTally()

	for _, m := range messages {
		acc.add(m.AuthorTable, w.TableMessage)
	}
	for _, l := range likes {
		if from, ok := dir[l.From]; ok {
			acc.add(from.Table, w.TableLike)
		}
		if to, ok := dir[l.To]; ok {
			acc.add(to.Table, w.TableLike)
		}
	}
	for _, v := range votes {
		acc.add(v.VoterTable, w.TableVote)
	}

	out := make([]TableScore, 0, len(acc.order))
	for _, table := range acc.sorted() {
		out = append(out, TableScore{Table: table, Score: round1(acc.score[table])})
	}
	return out
}

// UserScore is one row of the user ranking.
type UserScore struct {
	Name   string  `json:"name"`
	Table  string  `json:"table"`
	Status string  `json:"status"`
	Score  float64 `json:"score"`
}

// UserRanking returns the top RankingSize users by activity: messages
// authored, likes sent and votes cast. Users absent from dir are annotated
// with Unknown.
func UserRanking(messages []model.Message, likes []model.LikeEdge, votes []model.Vote, dir Directory, w config.Weights) []UserScore {
	acc := newTally()

	for _, m := range messages {
		acc.add(m.AuthorName, w.UserMessage)
	}
	for _, l := range likes {
		acc.add(l.From, w.UserLike)
	}
	for _, v := range votes {
		acc.add(v.VoterName, w.UserVote)
	}

	names := acc.sorted()
	if len(names) > RankingSize {
		names = names[:RankingSize]
	}

	out := make([]UserScore, 0, len(names))
	for _, name := range names {
		row := UserScore{Name: name, Table: Unknown, Status: Unknown, Score: round1(acc.score[name])}
		if id, ok := dir[name]; ok {
			row.Table = id.Table
			if id.Status != "" {
				row.Status = string(id.Status)
			}
		}
		out = append(out, row)
	}
	return out
}

// VoteCount is one row of the music tally.
type VoteCount struct {
	MusicName string  `json:"musicName"`
	Votes     int     `json:"votes"`
	Percent   float64 `json:"percent"`
}

// VoteTally groups votes by music name and returns the TallySize most
// voted, each with its share of all votes.
func VoteTally(votes []model.Vote) []VoteCount {
	acc := newTally()
	for _, v := range votes {
		acc.add(v.MusicName, 1)
	}

	names := acc.sorted()
	if len(names) > TallySize {
		names = names[:TallySize]
	}

	out := make([]VoteCount, 0, len(names))
	for _, name := range names {
		n := int(acc.score[name])
		out = append(out, VoteCount{MusicName: name, Votes: n, Percent: Percent(n, len(votes))})
	}
	return out
}

// Percent is part/total*100 to one decimal, 0 when total is 0.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

// RaffleOdds is each participant's chance of winning, in percent.
func RaffleOdds(participants int) float64 {
	if participants <= 0 {
		return 0
	}
	return round1(1 / float64(participants) * 100)
}

// Picker returns a uniform int in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// Draw picks a winner uniformly from state.Participants and records it in
// history. The input state is not modified.
func Draw(state model.RaffleState, rng Picker, at time.Time) (model.RaffleState, error) {
	n := len(state.Participants)
	if n == 0 {
		return state, ErrNoParticipants
	}

	winner := state.Participants[rng.IntN(n)]

	next := model.RaffleState{
		Participants: slices.Clone(state.Participants),
		Winner:       &winner,
		History: append(slices.Clone(state.History), model.RaffleDraw{
			Winner:           winner,
			ParticipantCount: n,
			Date:             at,
		}),
	}
	return next, nil
}

// Reset clears participants and winner, keeping history.
func Reset(state model.RaffleState) model.RaffleState {
	return model.RaffleState{
		Participants: []model.RaffleEntry{},
		History:      slices.Clone(state.History),
	}
}

// tally accumulates scores while remembering first-encounter order.
type tally struct {
	score map[string]float64
	order []string
}

func newTally() *tally {
	return &tally{score: make(map[string]float64)}
}

func (t *tally) add(key string, w float64) {
	if _, ok := t.score[key]; !ok {
		t.order = append(t.order, key)
	}
	t.score[key] += w
}

// sorted returns keys by score descending; ties keep encounter order.
func (t *tally) sorted() []string {
	keys := slices.Clone(t.order)
	slices.SortStableFunc(keys, func(a, b string) int {
		sa, sb := round1(t.score[a]), round1(t.score[b])
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}
		return 0
	})
	return keys
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

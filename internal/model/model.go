// Package model defines the venue records exchanged with the document store.
package model

import (
	"slices"
	"strings"
	"time"
)

// Collection names in the document store.
const (
	CollectionUsers           = "users"
	CollectionPresence        = "presence"
	CollectionMessages        = "messages"
	CollectionLikes           = "likes"
	CollectionPrivateMessages = "private_messages"
	CollectionDrinks          = "drinks"
	CollectionTabs            = "tabs"
	CollectionVotes           = "votes"
	CollectionMusic           = "music"
	CollectionRaffle          = "raffle"
)

// RaffleDocID is the id of the singleton raffle document.
const RaffleDocID = "current"

// Status is a patron's relationship status.
type Status string

const (
	StatusSingle  Status = "Single"
	StatusTaken   Status = "Taken"
	StatusMarried Status = "Married"
)

// Statuses lists the accepted values in display order.
var Statuses = []Status{StatusSingle, StatusTaken, StatusMarried}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// Identity is a patron. (Name, Table) is the key; names compare
// case-sensitively everywhere.
type Identity struct {
	Name    string `json:"name"`
	Table   string `json:"table"`
	Status  Status `json:"status,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

// Key is the document id used for the patron in "users" and "presence".
func (i Identity) Key() string {
	return i.Name + "_" + i.Table
}

// Same reports whether two identities are the same patron.
func (i Identity) Same(o Identity) bool {
	return i.Name == o.Name && i.Table == o.Table
}

// DirectoryEntry is a "users" document.
type DirectoryEntry struct {
	Identity
	Online     bool      `json:"online"`
	LastActive time.Time `json:"lastActive"`
}

// PresenceRecord is a "presence" document backing the radar.
// Online is advisory: activity is decided by LastActive and a window.
type PresenceRecord struct {
	Identity
	LastActive time.Time `json:"lastActive"`
	Online     bool      `json:"online"`
	Interests  []string  `json:"interests,omitempty"`
}

// Message is a bar chat message. Append-only.
type Message struct {
	Text        string    `json:"text"`
	AuthorName  string    `json:"authorName"`
	AuthorTable string    `json:"authorTable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LikeEdge is a directed like. At most one per (From, To), enforced on write.
type LikeEdge struct {
	From      string    `json:"from"`
	FromTable string    `json:"fromTable,omitempty"`
	To        string    `json:"to"`
	ToTable   string    `json:"toTable,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PrivateMessage is a message between two matched patrons.
type PrivateMessage struct {
	ChatID    string    `json:"chatId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatID is the symmetric id of the private chat between a and b.
func ChatID(a, b string) string {
	pair := []string{a, b}
	slices.Sort(pair)
	return strings.Join(pair, "_")
}

// GiftStatus is the lifecycle state of a DrinkGift.
type GiftStatus string

const (
	GiftPending  GiftStatus = "pending"
	GiftAccepted GiftStatus = "accepted"
	GiftDeclined GiftStatus = "declined"
)

// Terminal reports whether the status can no longer change.
func (s GiftStatus) Terminal() bool {
	return s == GiftAccepted || s == GiftDeclined
}

// DrinkGift is a drink sent from one patron to another.
// Status moves pending → accepted|declined exactly once.
type DrinkGift struct {
	From       string     `json:"from"`
	To         string     `json:"to"`
	FromTable  string     `json:"fromTable"`
	ToTable    string     `json:"toTable"`
	DrinkType  string     `json:"drinkType"`
	Price      float64    `json:"price"`
	Anonymous  bool       `json:"anonymous"`
	Status     GiftStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

// Tab is the running total a patron owes for accepted drinks they sent.
type Tab struct {
	Name      string    `json:"name"`
	Table     string    `json:"table"`
	Total     float64   `json:"total"`
	Drinks    int       `json:"drinks"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Music is an entry in the voting catalog.
type Music struct {
	Name   string `json:"name"`
	Artist string `json:"artist,omitempty"`
}

// Vote is one patron's music vote. One per voter, enforced on write.
type Vote struct {
	MusicID    string    `json:"musicId"`
	MusicName  string    `json:"musicName"`
	VoterName  string    `json:"voterName"`
	VoterTable string    `json:"voterTable"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RaffleEntry is a participant or winner snapshot.
type RaffleEntry struct {
	Name     string    `json:"name"`
	Table    string    `json:"table"`
	JoinedAt time.Time `json:"joinedAt,omitempty"`
}

// RaffleDraw is one line of raffle history.
type RaffleDraw struct {
	Winner           RaffleEntry `json:"winner"`
	ParticipantCount int         `json:"participantCount"`
	Date             time.Time   `json:"date"`
}

// RaffleState is the singleton raffle document.
type RaffleState struct {
	Participants []RaffleEntry `json:"participants"`
	Winner       *RaffleEntry  `json:"winner"`
	History      []RaffleDraw  `json:"history"`
}

// HasParticipant reports whether id already joined.
func (r RaffleState) HasParticipant(id Identity) bool {
	return slices.ContainsFunc(r.Participants, func(p RaffleEntry) bool {
		return Identity{Name: p.Name, Table: p.Table}.Same(id)
	})
}

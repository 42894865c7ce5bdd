// Package repository gives the services typed, per-collection access to
// the document store.
package repository

import (
	"github.com/oggyb/barchat/internal/cache"
	"github.com/oggyb/barchat/internal/docstore"
)

// Repositories bundles every repository over one store.
type Repositories struct {
	Users    *UserRepository
	Messages *MessageRepository
	Likes    *LikeRepository
	Private  *PrivateMessageRepository
	Drinks   *DrinkRepository
	Votes    *VoteRepository
	Raffle   *RaffleRepository
}

// New builds all repositories. c may be nil.
func New(store docstore.Store, c *cache.RedisCache) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(store),
		Messages: NewMessageRepository(store),
		Likes:    NewLikeRepository(store, c),
		Private:  NewPrivateMessageRepository(store),
		Drinks:   NewDrinkRepository(store),
		Votes:    NewVoteRepository(store),
		Raffle:   NewRaffleRepository(store),
	}
}

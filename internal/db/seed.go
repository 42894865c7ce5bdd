package db

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/barchat/internal/model"
)

// DemoMusic is the catalog every seeded venue starts with.
var DemoMusic = []model.Music{
	{Name: "Evidências", Artist: "Chitãozinho & Xororó"},
	{Name: "Garota de Ipanema", Artist: "Tom Jobim"},
	{Name: "Aquarela", Artist: "Toquinho"},
	{Name: "Mas Que Nada", Artist: "Jorge Ben Jor"},
	{Name: "País Tropical", Artist: "Jorge Ben Jor"},
	{Name: "Ai Se Eu Te Pego", Artist: "Michel Teló"},
	{Name: "Trem-Bala", Artist: "Ana Vilela"},
	{Name: "Tempo Perdido", Artist: "Legião Urbana"},
}

// DemoPatrons are the seeded identities, two per table.
var DemoPatrons = []model.Identity{
	{Name: "Ana", Table: "1", Status: model.StatusSingle},
	{Name: "Bruno", Table: "1", Status: model.StatusSingle},
	{Name: "Carla", Table: "2", Status: model.StatusTaken},
	{Name: "Diego", Table: "2", Status: model.StatusSingle},
	{Name: "Elisa", Table: "3", Status: model.StatusSingle},
	{Name: "Felipe", Table: "3", Status: model.StatusMarried},
	{Name: "Gabi", Table: "4", Status: model.StatusSingle},
	{Name: "Heitor", Table: "4", Status: model.StatusSingle},
}

var demoLines = []string{
	"Boa noite, galera!",
	"Quem pediu Evidências de novo?",
	"A caipirinha daqui é a melhor",
	"Mesa 3 tá animada hoje",
	"Alguém topa um brinde?",
	"Que música é essa?",
}

// SeedCounts reports what SeedDemoData wrote.
type SeedCounts struct {
	Music    int
	Patrons  int
	Messages int
	Likes    int
	Votes    int
}

// SeedDemoData resets the document table and populates a demo night.
//
// Behavior:
//  1. Clears every document.
//  2. Writes the DemoMusic catalog and the DemoPatrons directory (offline).
//  3. Writes ~3 chat messages per patron.
//  4. Each patron likes each other patron with ~40% probability; every 3rd
//     like is mirrored so the demo has matches.
//  5. Half of the patrons vote for a random song.
//
// Compatible with both MySQL and SQLite.
func SeedDemoData(db *gorm.DB, r *rand.Rand, now time.Time) (SeedCounts, error) {
	var counts SeedCounts

	// --- Fresh start ---
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Document{}).Error; err != nil {
		return counts, fmt.Errorf("failed to clear documents: %w", err)
	}
	log.Println("Cleared existing data")

	at := now.Add(-2 * time.Hour)
	tick := func() time.Time {
		at = at.Add(time.Duration(1+r.IntN(90)) * time.Second)
		return at
	}

	put := func(collection, id string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if id == "" {
			uid, err := uuid.NewV7()
			if err != nil {
				return err
			}
			id = uid.String()
		}
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).Create(&Document{Collection: collection, ID: id, Data: datatypes.JSON(data), CreatedAt: at, UpdatedAt: at}).Error
	}

	// --- Music ---
	musicIDs := make([]string, len(DemoMusic))
	for i, m := range DemoMusic {
		id, err := uuid.NewV7()
		if err != nil {
			return counts, err
		}
		musicIDs[i] = id.String()
		if err := put(model.CollectionMusic, musicIDs[i], m); err != nil {
			return counts, fmt.Errorf("failed to seed music: %w", err)
		}
		counts.Music++
	}

	// --- Patrons ---
	for _, p := range DemoPatrons {
		entry := model.DirectoryEntry{Identity: p, LastActive: at}
		if err := put(model.CollectionUsers, p.Key(), entry); err != nil {
			return counts, fmt.Errorf("failed to seed patron: %w", err)
		}
		counts.Patrons++
	}
	log.Printf("Seeded %d songs and %d patrons.", counts.Music, counts.Patrons)

	// --- Messages ---
	for i := 0; i < 3*len(DemoPatrons); i++ {
		p := DemoPatrons[r.IntN(len(DemoPatrons))]
		tick()
		msg := model.Message{
			Text:        demoLines[r.IntN(len(demoLines))],
			AuthorName:  p.Name,
			AuthorTable: p.Table,
			CreatedAt:   at,
		}
		if err := put(model.CollectionMessages, "", msg); err != nil {
			return counts, fmt.Errorf("failed to seed message: %w", err)
		}
		counts.Messages++
	}

	// --- Likes ---
	liked := map[string]bool{}
	like := func(from, to model.Identity) error {
		id := from.Name + ":" + to.Name
		if liked[id] {
			return nil
		}
		liked[id] = true
		tick()
		edge := model.LikeEdge{From: from.Name, FromTable: from.Table, To: to.Name, ToTable: to.Table, CreatedAt: at}
		if err := put(model.CollectionLikes, id, edge); err != nil {
			return fmt.Errorf("failed to seed like: %w", err)
		}
		counts.Likes++
		return nil
	}
	n := 0
	for _, from := range DemoPatrons {
		for _, to := range DemoPatrons {
			if from.Name == to.Name || r.Float64() >= 0.4 {
				continue
			}
			if err := like(from, to); err != nil {
				return counts, err
			}
			n++
			// ensure some mutual likes
			if n%3 == 0 {
				if err := like(to, from); err != nil {
					return counts, err
				}
			}
		}
	}

	// --- Votes ---
	for i, p := range DemoPatrons {
		if i%2 == 1 {
			continue
		}
		pick := r.IntN(len(DemoMusic))
		tick()
		vote := model.Vote{
			MusicID:    musicIDs[pick],
			MusicName:  DemoMusic[pick].Name,
			VoterName:  p.Name,
			VoterTable: p.Table,
			CreatedAt:  at,
		}
		if err := put(model.CollectionVotes, p.Key(), vote); err != nil {
			return counts, fmt.Errorf("failed to seed vote: %w", err)
		}
		counts.Votes++
	}
	log.Printf("Seeded %d messages, %d likes and %d votes.", counts.Messages, counts.Likes, counts.Votes)

	return counts, nil
}

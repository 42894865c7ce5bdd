package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/oggyb/barchat/internal/auth"
	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/db"
)

func main() {
	hashPassphrase := flag.String("hash-passphrase", "", "print the bcrypt hash for ADMIN_PASSPHRASE_HASH and exit")
	flag.Parse()

	if *hashPassphrase != "" {
		hash, err := auth.HashPassphrase(*hashPassphrase)
		if err != nil {
			log.Fatalf("failed to hash passphrase: %v", err)
		}
		fmt.Println(hash)
		return
	}

	// Load configuration
	cfg := config.New()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	if _, err := db.SeedDemoData(database, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), time.Now().UTC()); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}

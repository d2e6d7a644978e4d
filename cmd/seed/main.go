package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/vncsmyrnk/votepage/internal/app"
	"github.com/vncsmyrnk/votepage/internal/categories"
	"github.com/vncsmyrnk/votepage/internal/config"
	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var imageHash, category1, category2 string
	var generate bool

	flag.StringVar(&imageHash, "image-hash", cfg.ImageHash, "Partition key of the seeded record")
	flag.BoolVar(&generate, "generate", false, "Use a generated uniq-<uuid> image hash")
	flag.StringVar(&category1, "category1", "", "First category (random when empty)")
	flag.StringVar(&category2, "category2", "", "Second category (random when empty)")
	flag.Parse()

	if generate {
		imageHash = domain.NewImageName()
	}
	if category1 == "" || category2 == "" {
		category1, category2 = categories.RandomPair(nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repo, closeStore, err := app.NewVoteRepository(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	record := &domain.VoteRecord{
		ImageHash: imageHash,
		Category1: category1,
		Category2: category2,
	}
	if err := repo.Put(ctx, record); err != nil {
		log.Fatalf("Error seeding vote record: %v", err)
	}

	log.Printf("Seeded %q with categories %q and %q", imageHash, category1, category2)
}

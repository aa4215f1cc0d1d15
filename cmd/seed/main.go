package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"publicity/internal/auth"
	"publicity/internal/config"
	"publicity/internal/db"
	"publicity/internal/model"
	"publicity/internal/repository"
)

// seedUser pairs a demo user with its demo postings.
type seedUser struct {
	name, fullname, nickname, email, password string

	postings []seedPosting
}

type seedPosting struct {
	publication, companyName, contact string
}

var seedUsers = []seedUser{
	{
		name: "Ana", fullname: "Ana Maria Lopez", nickname: "ana123",
		email: "ana@example.com", password: "secret",
		postings: []seedPosting{
			{
				publication: "Summer sale, everything half price this weekend only",
				companyName: "Lopez Textiles",
				contact:     "ana@example.com",
			},
		},
	},
	{
		name: "Bruno", fullname: "Bruno Diaz", nickname: "bruno_d",
		email: "bruno@example.com", password: "secret",
		postings: []seedPosting{
			{
				publication: "Looking for plumbing work, fifteen years of experience",
				contact:     "555-0134",
			},
			{
				publication: "New bakery opening on Main Street next month",
				companyName: "Pan Diaz",
				contact:     "bruno@example.com",
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Publicity{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	publicityRepo := repository.NewPublicityRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, seed := range seedUsers {
		existing, err := userRepo.FindByNickname(ctx, seed.nickname)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed checking user %s: %v", seed.nickname, err)
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", seed.nickname)
			skipped++
			continue
		}

		hash, err := auth.HashPassword(seed.password)
		if err != nil {
			log.Fatalf("Failed hashing password for %s: %v", seed.nickname, err)
		}
		user := &model.User{
			Name:         seed.name,
			Fullname:     seed.fullname,
			Nickname:     seed.nickname,
			Email:        seed.email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed creating user %s: %v", seed.nickname, err)
		}

		for _, p := range seed.postings {
			publicity := &model.Publicity{
				Publication: p.publication,
				CompanyName: p.companyName,
				Contact:     p.contact,
				UserID:      user.ID,
			}
			if err := publicityRepo.Create(ctx, publicity); err != nil {
				log.Fatalf("Failed creating posting for %s: %v", seed.nickname, err)
			}
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", created)
	log.Printf("  - Users skipped: %d", skipped)
}

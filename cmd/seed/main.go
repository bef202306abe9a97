package main

import (
	"context"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"skillswap/internal/database"
	"skillswap/internal/domain"
	"skillswap/internal/repository"
)

type demoUser struct {
	name    string
	email   string
	offer   []string
	request []string
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	skills := repository.NewSkillRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := &domain.User{
		Name:         "Admin",
		Email:        "admin@skillswap.com",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	if err := profiles.Create(ctx, &domain.Profile{
		UserID:   admin.ID,
		Bio:      "Platform Administrator",
		Location: "Global",
	}); err != nil {
		log.Fatal(err)
	}

	categories := []domain.Category{
		{Name: "Programming", Icon: "💻"},
		{Name: "Design", Icon: "🎨"},
		{Name: "Music", Icon: "🎵"},
		{Name: "Languages", Icon: "🌍"},
		{Name: "Sports", Icon: "⚽"},
		{Name: "Cooking", Icon: "🍳"},
		{Name: "Photography", Icon: "📷"},
		{Name: "Marketing", Icon: "📈"},
	}
	for i := range categories {
		if err := db.WithContext(ctx).Create(&categories[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	randomCategory := func() *int64 {
		id := categories[rand.Intn(len(categories))].ID
		return &id
	}

	demo := []demoUser{
		{"John Doe", "john@example.com", []string{"Guitar", "Piano"}, []string{"Python", "React"}},
		{"Sarah Ahmed", "sarah@example.com", []string{"Photoshop", "UI/UX"}, []string{"Guitar", "Spanish"}},
		{"Ali Hassan", "ali@example.com", []string{"Python", "Django"}, []string{"Photography", "Piano"}},
		{"Emma Wilson", "emma@example.com", []string{"Spanish", "French"}, []string{"Photoshop", "Cooking"}},
		{"Carlos Mendez", "carlos@example.com", []string{"Photography"}, []string{"React", "Django"}},
		{"Aisha Noor", "aisha@example.com", []string{"React", "Vue.js"}, []string{"French", "UI/UX"}},
	}

	for _, d := range demo {
		user := &domain.User{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         "user",
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatal(err)
		}
		if err := profiles.Create(ctx, &domain.Profile{
			UserID:   user.ID,
			Bio:      "Passionate about learning and sharing skills.",
			Location: "Demo City",
		}); err != nil {
			log.Fatal(err)
		}

		for _, name := range d.offer {
			err := skills.Create(ctx, &domain.Skill{
				UserID:     user.ID,
				CategoryID: randomCategory(),
				SkillName:  name,
				Type:       domain.SkillOffer,
				Level:      domain.LevelIntermediate,
			})
			if err != nil {
				log.Fatal(err)
			}
		}
		for _, name := range d.request {
			err := skills.Create(ctx, &domain.Skill{
				UserID:     user.ID,
				CategoryID: randomCategory(),
				SkillName:  name,
				Type:       domain.SkillRequest,
				Level:      domain.LevelBeginner,
			})
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	log.Println("seed complete")
}

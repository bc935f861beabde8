// Seeds the database with one admin and a handful of players, each
// with a few rolls, so the admin statistics endpoints have data to
// serve right away.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/anandvarma/namegen"
	"golang.org/x/crypto/bcrypt"

	"github.com/itacademy/dice-game-api/internal/auth"
	"github.com/itacademy/dice-game-api/internal/game"
	"github.com/itacademy/dice-game-api/internal/user"
	"github.com/itacademy/dice-game-api/pkg/config"
	"github.com/itacademy/dice-game-api/pkg/db"
)

const (
	playerCount    = 5
	rollsPerPlayer = 3
)

func main() {
	log.Println("Starting database seeder...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if err := db.Init(cfg); err != nil {
		log.Fatalf("error connecting to storage: %v", err)
	}
	if err := db.DB.AutoMigrate(&user.User{}, &game.Game{}); err != nil {
		log.Fatalf("error migrating schema: %v", err)
	}

	users := user.NewGormRepository(db.DB)
	games := game.NewGormRepository(db.DB)

	existing, err := users.FindByEmail("admin@example.com")
	if err != nil {
		log.Fatalf("error checking for admin user: %v", err)
	}
	if existing != nil {
		log.Println("Admin user already exists. Seeder finished.")
		return
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	if err := createUser(users, "Admin User", "admin@example.com", adminPassword, auth.RoleAdmin); err != nil {
		log.Fatalf("error creating admin user: %v", err)
	}
	log.Println("Admin user created successfully.")

	ngen := namegen.NewWithPostfixId(
		[]namegen.DictType{namegen.Adjectives, namegen.Animals},
		namegen.Numeric, 4,
	)
	dice := game.NewDice(nil)

	for i := 0; i < playerCount; i++ {
		name := ngen.Get()
		email := fmt.Sprintf("%s@example.com", name)
		if err := createUser(users, name, email, "password", auth.RolePlayer); err != nil {
			log.Fatalf("error creating player %s: %v", name, err)
		}

		seeded, err := users.FindByEmail(email)
		if err != nil {
			log.Fatalf("error reading back player %s: %v", name, err)
		}

		for j := 0; j < rollsPerPlayer; j++ {
			dice1, dice2, win := dice.Roll()
			if err := games.Create(&game.Game{
				UserID: seeded.ID,
				Dice1:  dice1,
				Dice2:  dice2,
				Win:    win,
			}); err != nil {
				log.Fatalf("error creating game for %s: %v", name, err)
			}
		}
	}

	log.Printf("Seeded %d players with %d rolls each.", playerCount, rollsPerPlayer)
}

func createUser(users user.Repository, name, email, password string, role auth.Role) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return users.Create(&user.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	})
}

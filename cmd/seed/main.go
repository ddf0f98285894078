package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"realty/internal/config"
	"realty/internal/db"
	"realty/internal/model"
	"realty/internal/repository"
)

const demoPassword = "password123"

// seedProperty pairs a listing with the email of its seeded agent.
type seedProperty struct {
	agentEmail string
	property   model.Property
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.Application{},
		&model.WishlistItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)

	users := []model.User{
		{Username: "demo-agent", Email: "agent@example.com", Role: model.RoleAgent},
		{Username: "demo-agent-2", Email: "agent2@example.com", Role: model.RoleAgent},
		{Username: "demo-buyer", Email: "buyer@example.com", Role: model.RoleBuyer},
	}

	created := 0
	agents := map[string]uint{}
	for i := range users {
		user, existed, err := ensureUser(ctx, userRepo, &users[i])
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].Email, err)
		}
		if !existed {
			created++
		}
		if user.Role == model.RoleAgent {
			agents[user.Email] = user.ID
		}
	}
	log.Printf("Seeded users (%d new), demo password is %q", created, demoPassword)

	properties := []seedProperty{
		{"agent@example.com", model.Property{
			Title:        "Sunny two-bedroom flat",
			Description:  "Bright apartment close to the city center.",
			Price:        decimal.NewFromInt(185000),
			Location:     "Riverside",
			PropertyType: "apartment",
		}},
		{"agent@example.com", model.Property{
			Title:        "Family house with garden",
			Description:  "Four bedrooms, quiet street, renovated kitchen.",
			Price:        decimal.NewFromInt(420000),
			Location:     "Maple Grove",
			PropertyType: "house",
		}},
		{"agent2@example.com", model.Property{
			Title:        "Downtown studio",
			Description:  "Compact studio, ideal for commuters.",
			Price:        decimal.NewFromInt(98000),
			Location:     "Central",
			PropertyType: "studio",
		}},
	}

	seeded := 0
	for _, sp := range properties {
		agentID, ok := agents[sp.agentEmail]
		if !ok {
			log.Fatalf("No seeded agent for %s", sp.agentEmail)
		}
		ok, err := ensureProperty(ctx, propertyRepo, agentID, sp.property)
		if err != nil {
			log.Fatalf("Failed to seed property %q: %v", sp.property.Title, err)
		}
		if ok {
			seeded++
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New properties created: %d", seeded)
}

// ensureUser creates the user if the email is not registered yet.
func ensureUser(ctx context.Context, repo repository.UserRepository, user *model.User) (*model.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, true, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return nil, false, err
	}
	user.PasswordHash = string(hashed)

	if err := repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, false, nil
}

// ensureProperty creates the listing unless the agent already has one
// with the same title.
func ensureProperty(ctx context.Context, repo repository.PropertyRepository, agentID uint, property model.Property) (bool, error) {
	existing, err := repo.ListByAgent(ctx, agentID)
	if err != nil {
		return false, err
	}
	for _, p := range existing {
		if p.Title == property.Title {
			return false, nil
		}
	}

	property.ListedBy = agentID
	property.IsApproved = true
	if err := repo.Create(ctx, &property); err != nil {
		return false, err
	}
	return true, nil
}

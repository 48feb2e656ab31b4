package main

import (
	"context"
	"log"

	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/model"
	"contactbook/internal/repository"
	"contactbook/internal/service"
)

// Seeds a demo user with a handful of contacts for local development.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Contact{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	users := service.NewUserService(userRepo)
	contacts := service.NewContactService(contactRepo)

	user, err := users.Register(ctx, service.RegisterInput{
		FirstName:    "Demo",
		LastName:     "User",
		Email:        "demo@example.com",
		Password:     "demo-password",
		DateOfBirth:  "1990-01-15",
		Gender:       "Other",
		PhoneNumbers: []string{"555-0100"},
		Address:      "1 Demo Street",
	})
	if err != nil {
		log.Fatalf("Failed to seed user (already seeded?): %v", err)
	}
	log.Printf("Created demo user %d (%s)", user.ID, user.Email)

	seedContacts := []service.ContactInput{
		{FirstName: "Ada", LastName: "Lovelace", Company: "Analytical Engines", Address: "London", PhoneNumbers: []string{"555-0101"}},
		{FirstName: "Grace", LastName: "Hopper", Company: "US Navy", Address: "Arlington", PhoneNumbers: []string{"555-0102", "555-0103"}},
		{FirstName: "Alan", LastName: "Turing", Company: "Bletchley Park", Address: "Milton Keynes", PhoneNumbers: []string{"555-0104"}},
	}

	created := 0
	for _, input := range seedContacts {
		if _, err := contacts.Create(ctx, user.ID, input); err != nil {
			log.Fatalf("Failed to seed contact %s %s: %v", input.FirstName, input.LastName, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Contacts created: %d", created)
}

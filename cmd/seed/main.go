package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"blogify/database"
	"blogify/internal/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

var reactionTypes = []models.ReactionType{
	{Name: "like", Emoji: "👍", DisplayName: "Like", SortOrder: 1},
	{Name: "love", Emoji: "❤️", DisplayName: "Love", SortOrder: 2},
	{Name: "laugh", Emoji: "😂", DisplayName: "Laugh", SortOrder: 3},
	{Name: "wow", Emoji: "😮", DisplayName: "Wow", SortOrder: 4},
	{Name: "sad", Emoji: "😢", DisplayName: "Sad", SortOrder: 5},
	{Name: "angry", Emoji: "😠", DisplayName: "Angry", SortOrder: 6},
}

func main() {
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)
	adminUsername := adminCmd.String("username", os.Getenv("ADMIN_USERNAME"), "Superuser name")
	adminEmail := adminCmd.String("email", os.Getenv("ADMIN_EMAIL"), "Superuser email")
	adminPassword := adminCmd.String("password", os.Getenv("ADMIN_PASSWORD"), "Superuser password")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "reactions":
		database.ConnectDatabase()
		if err := seedReactionTypes(); err != nil {
			log.Fatalf("Error seeding reaction types: %v", err)
		}

	case "admin":
		adminCmd.Parse(os.Args[2:])
		database.ConnectDatabase()
		if err := seedSuperuser(*adminUsername, *adminEmail, *adminPassword); err != nil {
			log.Fatalf("Error creating superuser: %v", err)
		}

	case "all":
		adminCmd.Parse(os.Args[2:])
		database.ConnectDatabase()
		if err := seedReactionTypes(); err != nil {
			log.Fatalf("Error seeding reaction types: %v", err)
		}
		if err := seedSuperuser(*adminUsername, *adminEmail, *adminPassword); err != nil {
			log.Fatalf("Error creating superuser: %v", err)
		}

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

// seedReactionTypes is idempotent: existing names are left untouched.
func seedReactionTypes() error {
	for _, rt := range reactionTypes {
		var existing models.ReactionType
		err := database.DB.Where("name = ?", rt.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err := database.DB.Create(&rt).Error; err != nil {
			return err
		}
		log.Printf("Created reaction type %q", rt.Name)
	}
	log.Println("Reaction type catalog is up to date")
	return nil
}

func seedSuperuser(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("username, email and password are required (flags or ADMIN_* env vars)")
	}

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		log.Printf("Superuser %q already exists, skipping", username)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:    username,
		Email:       email,
		Password:    string(hashed),
		IsSuperuser: true,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Created superuser %q", username)
	return nil
}

func printHelp() {
	fmt.Println("Database seeding tool for Blogify")
	fmt.Println("\nUsage:")
	fmt.Println("  seed COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  reactions    Seed the reaction type catalog (like, love, laugh, wow, sad, angry)")
	fmt.Println("")
	fmt.Println("  admin        Create the initial superuser")
	fmt.Println("               Options:")
	fmt.Println("                 --username=NAME  Superuser name (default: ADMIN_USERNAME)")
	fmt.Println("                 --email=EMAIL    Superuser email (default: ADMIN_EMAIL)")
	fmt.Println("                 --password=PASS  Superuser password (default: ADMIN_PASSWORD)")
	fmt.Println("")
	fmt.Println("  all          Seed reaction types and create the superuser")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host")
	fmt.Println("  DB_PORT      Database port")
	fmt.Println("  DB_USER      Database user")
	fmt.Println("  DB_PASSWORD  Database password")
	fmt.Println("  DB_NAME      Database name")
	fmt.Println("  DB_SSLMODE   Database SSL mode")
}

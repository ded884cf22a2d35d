package main

import (
	"log"
	"os"

	"devzen-be/internal/model"
	"devzen-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	// Extensions and enums first, AutoMigrate does not manage these.
	log.Println("Step 1: Setting up extensions and enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_status') THEN CREATE TYPE user_status AS ENUM ('pending', 'active', 'blocked'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.UserRefreshToken{},
		&model.EmailVerificationToken{},
		&model.PasswordResetToken{},
		&model.Space{},
		&model.SpaceItem{},
		&model.BookmarkEmbedding{},
		&model.AiTool{},
		&model.AppInfo{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Vector similarity search needs an ANN index, GORM has no tag for it.
	log.Println("Step 3: Creating indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_bookmark_embeddings_embedding
		 ON bookmark_embeddings USING hnsw (embedding_value vector_cosine_ops);`,

		`CREATE INDEX IF NOT EXISTS idx_space_items_parent_id
		 ON space_items ((tool ->> 'parentId'));`,
		`CREATE INDEX IF NOT EXISTS idx_space_items_type
		 ON space_items ((tool ->> 'type'));`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("Success: Database migration completed via GORM.")
}

package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "devsnap_backend/internal/feature/auth/domain/entity"
	sharelinkentity "devsnap_backend/internal/feature/sharelinks/domain/entity"
	snapentity "devsnap_backend/internal/feature/snapshots/domain/entity"
)

// OpenDB connects to Postgres at databaseURL. With an empty URL it falls back
// to an in-memory SQLite database so the service can run without a database
// (the "jwt" session strategy); nothing survives a restart in that mode.
//
// TranslateError is required: the repositories depend on unique-constraint
// violations surfacing as gorm.ErrDuplicatedKey.
func OpenDB(databaseURL string, runMigrations bool) *gorm.DB {
	gormCfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)

	if databaseURL == "" {
		log.Println("DATABASE_URL is not set, using in-memory SQLite")
		db, err = gorm.Open(sqlite.Open(":memory:"), gormCfg)
		if err != nil {
			log.Fatalf("failed to open in-memory database: %v", err)
		}
		// The fallback store always needs its schema.
		runMigrations = true
	} else {
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(databaseURL), gormCfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	}

	if runMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authentity.VerificationToken{},
			&snapentity.Snapshot{},
			&sharelinkentity.ShareLink{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"disha/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the version-column backfill BEFORE AutoMigrate so existing rows
	// don't end up with NULL versions that break conditional updates.
	if err := migrateDayEntriesAddVersion(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.StudyProfile{},
		&entities.StudyPlan{},
		&entities.DayEntry{},
		&entities.StudyLog{},
		&entities.NoteDocument{},
		&entities.NoteChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateDayEntriesAddVersion adds the version column to day_entries created
// before completion patches became conditional, defaulting existing rows to 1.
func migrateDayEntriesAddVersion(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='day_entries'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid  int
		Name string
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(day_entries)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	for _, c := range cols {
		if strings.EqualFold(c.Name, "version") {
			// already good
			return nil
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`ALTER TABLE day_entries ADD COLUMN version INTEGER NOT NULL DEFAULT 0`).Error; err != nil {
			return err
		}
		return tx.Exec(`UPDATE day_entries SET version = 1 WHERE version = 0`).Error
	})
}

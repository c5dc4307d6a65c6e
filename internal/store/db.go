package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fake-recruiter-detector/backend/internal/scoring"
)

// Database wraps the GORM DB handle holding the phrase dictionary.
type Database struct {
	gorm *gorm.DB
	mu   sync.Mutex
}

// Open initializes the SQLite-backed pattern store at the provided path.
func Open(path string, silent bool) (*Database, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("db path required")
	}
	cfg := &gorm.Config{}
	if silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&PatternRow{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode")
	}
	return &Database{gorm: db}, nil
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ReplacePatterns swaps the stored dictionary with the provided patterns,
// keeping their order.
func (d *Database) ReplacePatterns(patterns []scoring.Pattern) error {
	if d == nil {
		return errors.New("database is nil")
	}
	rows := make([]PatternRow, 0, len(patterns))
	for i, p := range patterns {
		rows = append(rows, PatternRow{
			Position:    i,
			Phrase:      p.Phrase,
			Weight:      p.Weight,
			Description: p.Description,
		})
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PatternRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		// Batch insert to stay under SQLite's variable limit (999)
		const batchSize = 150
		return tx.CreateInBatches(rows, batchSize).Error
	})
}

// ListPatterns returns the stored dictionary in table order.
func (d *Database) ListPatterns() ([]scoring.Pattern, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	var rows []PatternRow
	if err := d.gorm.Model(&PatternRow{}).Order("position ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	patterns := make([]scoring.Pattern, 0, len(rows))
	for _, row := range rows {
		patterns = append(patterns, scoring.Pattern{
			Phrase:      row.Phrase,
			Weight:      row.Weight,
			Description: row.Description,
		})
	}
	return patterns, nil
}

// CountPatterns returns the number of stored patterns.
func (d *Database) CountPatterns() (int64, error) {
	var count int64
	if err := d.gorm.Model(&PatternRow{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// LoadTable reads the stored dictionary and builds a validated table.
func (d *Database) LoadTable() (*scoring.PatternTable, error) {
	patterns, err := d.ListPatterns()
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	if len(patterns) == 0 {
		return nil, errors.New("pattern store is empty")
	}
	return scoring.NewPatternTable(patterns)
}

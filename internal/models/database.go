package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gorm_zerolog "github.com/wei840222/gorm-zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database holding the state document.
var DB *gorm.DB

// StateDocument is the single row the aggregate is persisted in.
// The state is stored as an opaque JSON document; the schema lives in
// the document, not in the table.
type StateDocument struct {
	ID        uint   `gorm:"primaryKey"`
	Data      []byte `gorm:"type:bytes"`
	UpdatedAt time.Time
}

// stateDocumentID is the fixed primary key of the only document.
// The tracker is single-user, there is exactly one aggregate.
const stateDocumentID uint = 1

// Connect opens the database and migrates the document table.
//
// When DB_HOST is set, postgresql is used. Otherwise the dsn names a
// sqlite file.
func Connect(dsn string) error {
	config := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: gorm_zerolog.New(),
	}

	var db *gorm.DB
	var err error

	if host, ok := os.LookupEnv("DB_HOST"); ok {
		log.Debug().Msg("DB_HOST is set, using postgresql")
		pgDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		db, err = gorm.Open(postgres.Open(pgDSN), config)
	} else {
		log.Debug().Msg("DB_HOST is not set, using sqlite database")
		db, err = gorm.Open(sqlite.Open(dsn), config)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(StateDocument{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	DB = db
	return nil
}

// LoadState reads the aggregate from the store.
//
// A missing or schema-invalid document substitutes the default state, it
// is not an error. Each call returns a fresh copy owned by the caller
// until the matching SaveState.
func LoadState() (*FinanceState, error) {
	var doc StateDocument
	err := DB.First(&doc, stateDocumentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultState(), nil
	}
	if err != nil {
		return nil, generalError(err)
	}

	state, err := ParseState(doc.Data)
	if err != nil {
		log.Warn().Err(err).Msg("stored document is invalid, substituting default state")
		return DefaultState(), nil
	}

	return state, nil
}

// SaveState writes the aggregate back to the store. An aggregate that
// fails the document schema check is not written.
func SaveState(state *FinanceState) error {
	raw, err := state.Export()
	if err != nil {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	if err := ValidateDocument(raw); err != nil {
		return err
	}

	err = DB.Save(&StateDocument{ID: stateDocumentID, Data: raw}).Error
	if err != nil {
		return generalError(err)
	}

	return nil
}

// generalError hides database errors we cannot turn into a helpful
// message behind ErrGeneral. The original error is logged so that server
// admins can debug. Driver errors carry internal detail that must not
// reach clients.
func generalError(err error) error {
	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		log.Error().Msgf("sqlite %T: %v", err, err.Error())
	} else {
		log.Error().Msgf("%T: %v", err, err.Error())
	}

	return ErrGeneral
}

// ResetState replaces the stored document with the default state and
// returns it.
func ResetState() (*FinanceState, error) {
	state := DefaultState()
	if err := SaveState(state); err != nil {
		return nil, err
	}

	return state, nil
}

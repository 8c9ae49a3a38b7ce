package repository

import (
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/config"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB        *sql.DB
	Inventory InventoryRepository
	Cart      CartRepository
	User      UserRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{
		DB:        db,
		Inventory: NewInventoryRepo(db),
		Cart:      NewCartRepo(db),
		User:      NewUserRepo(db),
	}, nil
}

// NewUnavailable wires every collaborator to a store that refuses all calls,
// so the process can start while the database is down.
func NewUnavailable(cause error) *Repository {
	store := NewUnavailableStore(cause)

	return &Repository{
		Inventory: store,
		Cart:      store,
		User:      store,
	}
}

func (p *Repository) Close() error {
	if p.DB == nil {
		return nil
	}
	return p.DB.Close()
}

package storage

import "github.com/ngocminh-dev/shop-admin-core/config"

// Open opens the configured database and prepares the collections table
func Open(cfg *config.Config) (*Store, error) {
	db, err := config.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	return New(db)
}

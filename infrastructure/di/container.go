package di

import (
	"go.uber.org/zap"

	"mindvault/application/ports"
	"mindvault/application/store"
	"mindvault/infrastructure/config"
	"mindvault/infrastructure/persistence/sqlite"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	DB        *sqlite.DB
	Snapshots ports.SnapshotStore
	Store     *store.Store
}

// Close releases everything the container owns.
func (c *Container) Close() error {
	err := c.DB.Close()
	_ = c.Logger.Sync()
	return err
}

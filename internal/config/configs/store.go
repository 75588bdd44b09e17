package configs

import (
	"fmt"
	"strings"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store selects the persistence backend.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Validate normalises Driver and rejects unknown values.
func (c *Store) Validate() error {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	switch c.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported store driver %q", c.Driver)
	}
}

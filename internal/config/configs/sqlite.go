package configs

// SQLite configures the file-backed store used for local runs.
type SQLite struct {
	// Path is the database file. It is created when missing.
	Path          string `env:"PATH" envDefault:"subscriptions.db"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
}

package config

const (
	// DefaultPort matches the port the service has always listened on.
	DefaultPort = 3000

	// DefaultDatabaseURL is a SQLite file in the working directory.
	DefaultDatabaseURL = "./books.db"

	// DotEnvFile is read at startup when it exists.
	DotEnvFile = ".env"
)

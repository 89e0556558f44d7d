package database

// Config holds configuration for the database connection.
type Config struct {
	// Provider selects the database engine (mysql, mssql).
	Provider string `mapstructure:"provider" default:"mysql"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port. Zero uses the engine default.
	Port int `mapstructure:"port" default:"0"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"forum"`
	// Qualifier is prefixed to every table name (e.g. yaf_).
	Qualifier string `mapstructure:"qualifier" default:""`
	// Owner replaces {databaseOwner} in SQL scripts.
	Owner string `mapstructure:"owner" default:"dbo"`
	// ConnectionString, when set, is used verbatim instead of the fields above.
	ConnectionString string `mapstructure:"connection_string" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

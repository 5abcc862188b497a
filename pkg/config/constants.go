package config

const (
	// EnvPrefix is the envconfig namespace for all service settings.
	EnvPrefix = "VALUERPRO"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "VALUERPRO_DB_DSN"
	EnvDBHost = "VALUERPRO_DB_HOST"
	EnvDBUser = "VALUERPRO_DB_USER"
	EnvDBName = "VALUERPRO_DB_NAME"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

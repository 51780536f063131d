package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthapi/internal/config"
	"github.com/2beens/healthapi/internal/db"
	"github.com/2beens/healthapi/internal/logging"
)

// migrate applies the schema migrations without starting the service,
// for deployments that keep run_migrations off.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	migrationsPath := flag.String("migrations", "", "migrations dir (overrides the config value)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout:   true,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Environment:   cfg.Environment,
	})

	path := cfg.MigrationsPath
	if *migrationsPath != "" {
		path = *migrationsPath
	}

	dbPassword := os.Getenv("HEALTH_API_DB_PASS")
	if dbPassword == "" {
		log.Warnln("db password not set. use HEALTH_API_DB_PASS")
	}

	log.Infof("migrating [%s] from [%s] ...", cfg.PostgresDBName, path)
	if err := db.Migrate(path, db.ConnString(db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: dbPassword,
	})); err != nil {
		log.Fatalf("migrate: %s", err)
	}
	log.Infoln("migrations done")
}

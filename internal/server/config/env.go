package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
)

// parseEnv populates Config fields from the FSTR_* environment variables.
//
// Recognized variables:
//
//	FSTR_RUN_ADDRESS  HTTP bind address (e.g., ":8000")
//	FSTR_DB_HOST      database host
//	FSTR_DB_PORT      database port
//	FSTR_DB_LOGIN     database user
//	FSTR_DB_PASS      database password
//	FSTR_DB_NAME      database name
//
// The five FSTR_DB_* variables are composed into a pgx DSN. If none of them
// is set, DatabaseDSN is left untouched; any missing part falls back to the
// development default.
func parseEnv(config *Config) {
	if addr, ok := os.LookupEnv("FSTR_RUN_ADDRESS"); ok {
		config.EndpointAddr = addr
	}

	host, okHost := os.LookupEnv("FSTR_DB_HOST")
	port, okPort := os.LookupEnv("FSTR_DB_PORT")
	login, okLogin := os.LookupEnv("FSTR_DB_LOGIN")
	pass, okPass := os.LookupEnv("FSTR_DB_PASS")
	name, okName := os.LookupEnv("FSTR_DB_NAME")

	if !okHost && !okPort && !okLogin && !okPass && !okName {
		return
	}

	if !okHost {
		host = "postgres"
	}
	if !okPort {
		port = "5432"
	}
	if !okLogin {
		login = "postgres"
	}
	if !okPass {
		pass = "postgres"
	}
	if !okName {
		name = "pereval"
	}

	config.DatabaseDSN = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		url.QueryEscape(login), url.QueryEscape(pass), net.JoinHostPort(host, port), name)
}

/*
Mrlserver starts a Marlin server and begins listening for new connections.

Usage:

	mrlserver [flags]

Once started, the Marlin server listens for HTTP requests and responds to them
using REST protocol. Clients can send SPARQL text to be parsed and get back its
syntax errors and tree, look up rules of the SPARQL grammar, and, once logged
in, save queries along with their parse results. By default it listens on
localhost:8080.

If a JWT token secret is not given, a random one is generated. As a
consequence, in this mode of operation all tokens are rendered invalid as soon
as the server shuts down. This is suitable for testing, but a secret must be
given via either CLI flags, config file, or environment variable if running in
production.

Settings are taken first from flags, then from environment variables, then
from the config file.

The flags are:

	-v, --version
		Give the current version of the Marlin server and then exit.

	-c, --config FILE
		Read settings from the given TOML file. Defaults to the value of
		environment variable MARLIN_CONFIG. If neither is given, no file is
		read.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment variable
		MARLIN_LISTEN_ADDRESS, and if that is not given, will default to
		localhost:8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. If there are less than
		32 bytes in the secret, it will be repeated until it is. The maximum
		size is 64 bytes. If not given, will default to the value of environment
		variable MARLIN_TOKEN_SECRET.

	--db DRIVER[:PARAMS]
		Use the given DB connection string. DRIVER must be one of the following:
		inmem, sqlite. inmem has no further params. sqlite needs the path to the
		data directory such as sqlite:path/to/db_dir. If not given, will default
		to the value of environment variable MARLIN_DATABASE. If no DB is
		specified anywhere, an in-memory database is used.

	--admin USERNAME
		Make sure an admin user with the given name exists at startup. Its
		password is taken from environment variable MARLIN_ADMIN_PASSWORD; if
		that is not set, a random password is generated and logged. Defaults
		to "admin".
*/
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dekarrin/marlin/internal/version"
	"github.com/dekarrin/marlin/server"
	"github.com/spf13/pflag"
)

const (
	EnvConfig        = "MARLIN_CONFIG"
	EnvListen        = "MARLIN_LISTEN_ADDRESS"
	EnvSecret        = "MARLIN_TOKEN_SECRET"
	EnvDB            = "MARLIN_DATABASE"
	EnvAdminPassword = "MARLIN_ADMIN_PASSWORD"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates an issue with the flags, the configuration, or
	// starting the server.
	ExitInitError

	// ExitServeError indicates the server stopped serving.
	ExitServeError
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of the Marlin server and then exit.")
	flagConfig  = pflag.StringP("config", "c", "", "Read settings from the given TOML file.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for token generation.")
	flagDB      = pflag.String("db", "", "Use the given DB connection string.")
	flagAdmin   = pflag.String("admin", "admin", "Make sure an admin user with the given name exists.")
)

var returnCode = ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(panicErr)
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (Marlin v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err)
		returnCode = ExitInitError
		return
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Printf("FATAL could not start server: %s", err.Error())
		returnCode = ExitInitError
		return
	}
	defer srv.Close()
	log.Printf("DEBUG Server initialized")

	adminPass := os.Getenv(EnvAdminPassword)
	if adminPass == "" {
		adminPass, err = randomHex(12)
		if err != nil {
			log.Printf("FATAL could not generate admin password: %s", err.Error())
			returnCode = ExitInitError
			return
		}
		log.Printf("WARN  Using generated admin password %q (only applied if %q is new)", adminPass, *flagAdmin)
	}
	if err := srv.EnsureAdmin(context.Background(), *flagAdmin, adminPass); err != nil {
		log.Printf("FATAL %s", err.Error())
		returnCode = ExitInitError
		return
	}

	log.Printf("INFO  Starting Marlin server %s...", version.ServerCurrent)
	if err := srv.ServeForever(); err != nil {
		log.Printf("FATAL %s", err.Error())
		returnCode = ExitServeError
	}
}

// setting returns the value of the named flag if it was given, otherwise
// the value of the environment variable.
func setting(flagName string, flagVal *string, env string) string {
	if pflag.Lookup(flagName).Changed {
		return *flagVal
	}
	return os.Getenv(env)
}

func loadConfig() (server.Config, error) {
	var cfg server.Config

	if file := setting("config", flagConfig, EnvConfig); file != "" {
		var err error
		cfg, err = server.LoadConfig(file)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", file, err)
		}
	}

	if listenAddr := setting("listen", flagListen, EnvListen); listenAddr != "" {
		if !strings.Contains(listenAddr, ":") {
			return cfg, fmt.Errorf("listen address is not in ADDRESS:PORT or :PORT format")
		}
		cfg.Listen = listenAddr
	}

	if dbConnStr := setting("db", flagDB, EnvDB); dbConnStr != "" {
		db, err := server.ParseDBConnString(dbConnStr)
		if err != nil {
			return cfg, fmt.Errorf("database: %w", err)
		}
		cfg.DB = db
	}

	if tokSecStr := setting("secret", flagSecret, EnvSecret); tokSecStr != "" {
		cfg.TokenSecret = []byte(tokSecStr)
	}

	if len(cfg.TokenSecret) > 0 {
		for len(cfg.TokenSecret) < server.MinSecretSize {
			cfg.TokenSecret = append(cfg.TokenSecret, cfg.TokenSecret...)
		}
		if len(cfg.TokenSecret) > server.MaxSecretSize {
			// keys would be chopped at 64, so rather than the user thinking
			// they have more security by giving a longer key, refuse to start.
			return cfg, fmt.Errorf("token secret is %d bytes, but it must be <= %d bytes", len(cfg.TokenSecret), server.MaxSecretSize)
		}
	} else {
		// use all 64 possible bytes if doing a generated secret
		cfg.TokenSecret = make([]byte, server.MaxSecretSize)
		if _, err := rand.Read(cfg.TokenSecret); err != nil {
			return cfg, fmt.Errorf("could not generate token secret: %w", err)
		}

		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
	}

	return cfg, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/forumauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-k string   access token signing secret
//	-r string   refresh token signing secret
//	-t int      access token validity, minutes
//	-e int      refresh token validity, minutes
//	-b int      bcrypt cost
//
// Arguments are first filtered with flagx.FilterArgs so this parser never
// collides with flags owned by other components (-c/-config in particular).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-r", "-t", "-e", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AccessTokenKey, "k", config.AccessTokenKey, "access token key")
	fs.StringVar(&config.RefreshTokenKey, "r", config.RefreshTokenKey, "refresh token key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenValidityDuration := fs.Int("e", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only apply the minute conversion for flags that were actually set, so
	// sub-minute durations from the environment survive untouched.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		case "e":
			config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
		}
	})
}

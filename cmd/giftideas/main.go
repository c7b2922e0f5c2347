package main

import (
	"log/slog"
	"os"

	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/logger"
	"github.com/urfave/cli/v2"
)

//	@title			Gift Ideas API
//	@version		1.0
//	@description	Generates Christmas gift ideas from recipient criteria.
//	@BasePath		/
func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	apiURLFlag := &cli.StringFlag{
		Name:    "api-url",
		Aliases: []string{"u"},
		Value:   config.DefaultAPIURL,
		Usage:   "Base URL of the gift suggestion service",
		EnvVars: []string{"GIFT_API_URL"},
	}
	databaseURLFlag := &cli.StringFlag{
		Name:    "database-url",
		Aliases: []string{"d"},
		Value:   config.DefaultDatabaseURL,
		Usage:   "PostgreSQL connection string; enables suggestion history",
		EnvVars: []string{"DATABASE_URL"},
	}

	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		apiURLFlag,
		databaseURLFlag,
		&cli.IntFlag{
			Name:    "rate-limit",
			Value:   config.DefaultRateLimit,
			Usage:   "Form posts and API calls allowed per minute per IP",
			EnvVars: []string{"RATE_LIMIT"},
		},
		&cli.IntFlag{
			Name:    "max-in-flight",
			Value:   config.DefaultMaxInFlight,
			Usage:   "Maximum concurrent requests to the suggestion service (0 = unbounded)",
			EnvVars: []string{"MAX_IN_FLIGHT"},
		},
		&cli.DurationFlag{
			Name:    "session-ttl",
			Value:   config.DefaultSessionTTL,
			Usage:   "How long an untouched form session is kept",
			EnvVars: []string{"SESSION_TTL"},
		},
		&cli.IntFlag{
			Name:    "history-limit",
			Value:   config.DefaultHistoryLimit,
			Usage:   "Entries shown on the history page",
			EnvVars: []string{"HISTORY_LIMIT"},
		},
		&cli.BoolFlag{
			Name:    "markdown",
			Usage:   "Render suggestions as markdown instead of plain text",
			EnvVars: []string{"RENDER_MARKDOWN"},
		},
	}

	return &cli.App{
		Name:  "giftideas",
		Usage: "Christmas gift ideas from a few questions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML config file",
				EnvVars: []string{"GIFTIDEAS_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the web application",
				Flags:  serveFlags,
				Action: serve,
			},
			{
				Name:  "generate",
				Usage: "Ask for gift ideas once and print them",
				Flags: []cli.Flag{
					apiURLFlag,
					&cli.StringFlag{Name: "gender", Usage: "Recipient gender (man, woman)"},
					&cli.StringFlag{Name: "age", Usage: "Recipient age"},
					&cli.StringFlag{Name: "price-min", Usage: "Minimum price in dollars"},
					&cli.StringFlag{Name: "price-max", Usage: "Maximum price in dollars"},
					&cli.StringFlag{Name: "hobbies", Usage: "Recipient hobbies, free text"},
				},
				Action: generate,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations",
				Flags:  []cli.Flag{databaseURLFlag},
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}
}

// resolveAPIURL picks the service URL: an explicit flag or env var wins over
// the config file, which wins over the built-in default.
func resolveAPIURL(c *cli.Context, file config.File) string {
	if c.IsSet("api-url") || file.APIURL == "" {
		return c.String("api-url")
	}
	return file.APIURL
}

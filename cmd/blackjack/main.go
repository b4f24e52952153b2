package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

type CLI struct {
	Seats    int    `short:"p" help:"Number of players at the table (1-5), skipping the startup prompt" env:"BLACKJACK_SEATS"`
	Bankroll int    `help:"Starting balance for each player, overriding the config file" env:"BLACKJACK_BANKROLL"`
	Seed     int64  `help:"Shuffle seed for a reproducible session (0 seeds from the clock)" env:"BLACKJACK_SEED"`
	Config   string `help:"Path to a table configuration file" default:"table.hcl" env:"BLACKJACK_CONFIG"`
	Debug    bool   `help:"Write diagnostic logging to blackjack-debug.log" env:"BLACKJACK_DEBUG"`
}

func main() {
	// A .env file can pre-populate the BLACKJACK_* variables kong reads.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli)

	lipgloss.SetColorProfile(termenv.ColorProfile())

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load table config", "error", err)
	}

	bankroll := cfg.Table.Bankroll
	if cli.Bankroll > 0 {
		bankroll = cli.Bankroll
	}
	seed := cfg.Table.Seed
	if cli.Seed != 0 {
		seed = cli.Seed
	}
	maxSeats := min(cfg.Table.MaxSeats, game.MaxSeats)

	if cli.Seats < 0 || cli.Seats > maxSeats {
		log.Fatal("Invalid number of players", "seats", cli.Seats, "max", maxSeats)
	}

	logger, closeLogger, err := setupLogger(cli.Debug)
	if err != nil {
		log.Fatal("Failed to set up logging", "error", err)
	}
	defer closeLogger()

	console := display.NewConsole(os.Stdin, os.Stdout)
	console.Banner()

	seats := cli.Seats
	if seats == 0 {
		seats = console.PromptSeats(maxSeats)
	}
	names := make([]string, 0, seats)
	for i := 1; i <= seats; i++ {
		names = append(names, console.PromptName(i))
	}

	rng := randutil.NewSession()
	if seed != 0 {
		rng = randutil.New(seed)
	}
	logger.Info("Starting session", "seats", seats, "bankroll", bankroll, "seeded", seed != 0)

	table := game.NewTable(rng, names, bankroll)
	if err := runSession(table, console, logger); err != nil {
		log.Fatal("Game ended with an error", "error", err)
	}
	ctx.Exit(0)
}

// runSession loops full rounds until the player quits or everyone is
// out of money. Balances persist across rounds; hands and bets do not.
func runSession(table *game.Table, console *display.Console, logger *log.Logger) error {
	for {
		round := game.NewRound(table, console, game.WithLogger(logger))
		if err := round.Play(); err != nil {
			return err
		}

		for _, p := range table.RetireBroke() {
			logger.Info("Player retired", "player", p.Name)
			console.Announce(game.PlayerRetiredEvent{Player: p})
		}
		if table.Seats() == 0 {
			return nil
		}
		if !console.PromptNextRound() {
			return nil
		}
	}
}

func setupLogger(debug bool) (*log.Logger, func(), error) {
	if !debug {
		return log.New(io.Discard), func() {}, nil
	}

	debugFile, err := os.OpenFile("blackjack-debug.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "TABLE",
		Level:           log.DebugLevel,
	})
	closer := func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}
	return logger, closer, nil
}

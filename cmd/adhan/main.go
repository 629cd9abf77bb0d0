package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/adhan/internal/cli"
	"github.com/julianstephens/adhan/internal/constants"
	apperrors "github.com/julianstephens/adhan/internal/errors"
	"github.com/julianstephens/adhan/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	BaseURL string `help:"Backend API base URL." env:"ADHAN_BASE_URL" default:"${base_url}"`
	City    string `help:"City to request prayer times for." env:"ADHAN_CITY" default:"${city}"`
	Country string `help:"Country to request prayer times for." env:"ADHAN_COUNTRY" default:"${country}"`
	Debug   bool   `help:"Enable debug logging." env:"ADHAN_DEBUG"`
	LogDir  string `help:"Directory for adhan.log." env:"ADHAN_LOG_DIR" default:"${log_dir}"`

	Tui     cli.TuiCmd     `cmd:"" help:"Launch the full-screen prayer display." default:"withargs"`
	Now     cli.NowCmd     `cmd:"" help:"Show the current prayer period."`
	Timings cli.TimingsCmd `cmd:"" help:"Show today's prayer times."`
	Day     cli.DayCmd     `cmd:"" help:"Show the Ramadan day label."`
}

// loadEnv loads the dotenv file named by ADHAN_ENV_FILE. A missing file is
// not an error.
func loadEnv() (string, error) {
	path := os.Getenv("ADHAN_ENV_FILE")
	if path == "" {
		path = constants.DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return path, err
	}
	return path, nil
}

func main() {
	if path, err := loadEnv(); err != nil {
		apperrors.Fatalf("failed to load env file %s: %v", path, err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Ramadan prayer-times display"),
		kong.UsageOnError(),
		kong.Vars{
			"version":  constants.Version,
			"base_url": constants.DefaultBaseURL,
			"city":     constants.DefaultCity,
			"country":  constants.DefaultCountry,
			"log_dir":  constants.DefaultLogDir,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug,
		LogDir:  CLI.LogDir,
		Console: ctx.Command() != "tui",
	}); err != nil {
		apperrors.Fatal(err)
	}
	appCtx := cli.NewContext(cli.Config{
		BaseURL: CLI.BaseURL,
		City:    CLI.City,
		Country: CLI.Country,
		Debug:   CLI.Debug,
	})
	logger.Debug("Starting", "command", ctx.Command(), "base_url", appCtx.Client.BaseURL())

	apperrors.Fatal(ctx.Run(appCtx))
}

package main

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arknights-bot-discord/internal/config"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
	applog "github.com/KirkDiggler/arknights-bot-discord/internal/log"
)

// app is the state shared by every subcommand once the root pre-run has loaded it
type app struct {
	envFile string
	cfg     *config.Config
	logger  *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "amiya",
		Short:         "Arknights operator lookups for Discord",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newBotCommand(a), newLookupCommand(a))
	return root
}

func (a *app) load() error {
	if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return eris.Wrapf(err, "failed to load %s", a.envFile)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := applog.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// gamedataClient builds the data-access client over the given table store
func (a *app) gamedataClient(store gamedata.TableStore) (gamedata.Client, error) {
	return gamedata.New(&gamedata.Config{
		BaseURL:    a.cfg.GameData.BaseURL,
		HttpClient: &http.Client{Timeout: a.cfg.GameData.Timeout},
		Store:      store,
		CacheTTL:   a.cfg.GameData.CacheTTL,
		Logger:     a.logger,
	})
}

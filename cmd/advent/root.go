package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"advent/internal/input"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Run advent calendar puzzle solutions",
	Long: `advent runs the puzzle solutions registered in this repository.

Inputs are read from an on-disk store and, when a session cookie is
configured, fetched from the calendar site on demand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.config/advent/config.yaml)")
	pf.String("inputs", "inputs", "directory the puzzle inputs are cached in")
	pf.String("session", "", "session cookie value for fetching inputs")
	pf.String("session-file", "", "file holding the session cookie value")
	pf.String("cookies", "", "Netscape-format cookies file")
	pf.String("user-agent", "", "User-Agent header for input requests")
	pf.Duration("request-interval", 2*time.Second, "minimum delay between input requests")
	pf.String("base-url", "", "calendar site base URL")
	for _, name := range []string{
		"inputs", "session", "session-file", "cookies",
		"user-agent", "request-interval", "base-url",
	} {
		cobra.CheckErr(viper.BindPFlag(name, pf.Lookup(name)))
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "advent"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("advent")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && cfgFile == "" {
		return nil
	}
	return err
}

// newStore builds the input store from the resolved configuration.
func newStore() (*input.Store, error) {
	store := &input.Store{
		Dir:       viper.GetString("inputs"),
		BaseURL:   viper.GetString("base-url"),
		UserAgent: viper.GetString("user-agent"),
		Limiter:   rate.NewLimiter(rate.Every(viper.GetDuration("request-interval")), 1),
	}
	if name := viper.GetString("cookies"); name != "" {
		jar, err := input.LoadCookies(name)
		if err != nil {
			return nil, err
		}
		store.Jar = jar
	}
	switch {
	case viper.GetString("session") != "":
		store.Session = viper.GetString("session")
	case viper.GetString("session-file") != "":
		session, err := input.LoadSession(viper.GetString("session-file"))
		if err != nil {
			return nil, err
		}
		store.Session = session
	}
	return store, nil
}

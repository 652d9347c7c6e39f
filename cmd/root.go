// Package cmd implements the command line interface of the emulator.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beanboi7/chyp8/config"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chyp8 [command]",
	Short: "Chip-8 emulator using Go",
	Long:  "A Chip-8 emulator written from scratch that mimics the functionalities of a Chip-8, an interpretted language originally written for the COSMIC-VIP/ Telmac 8 bit systems.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
	flags.Bool(config.KeyDebug, false, "enable debug logging")
	flags.BoolP(config.KeyQuiet, "q", false, "only log errors")
	bindFlags(flags, config.KeyDebug, config.KeyQuiet)

	config.SetDefaults(viper.GetViper())
}

// Execute runs the command selected by the arguments.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".chyp8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chyp8")
	}

	viper.SetEnvPrefix("CHYP8")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// loadConfig reads the config file if one exists and returns the validated
// configuration together with a logger for it.
func loadConfig() (config.Config, *log.Logger, error) {
	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && (cfgFile != "" || !errors.As(err, &notFound)) {
		return config.Config{}, nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, nil, err
	}

	logger := config.CreateLogger(cfg.Debug, cfg.Quiet)
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file", log.String("file", used))
	}
	return cfg, logger, nil
}

/*
Copyright © 2024 plantree
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dusted-go/logging/prettylog"
	"github.com/mattn/go-isatty"
	"github.com/plantree/bing-translator/internal/config"
	"github.com/plantree/bing-translator/internal/translator"
	slogformatter "github.com/samber/slog-formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "bing-translator",
		Short: "List the languages supported by the Microsoft Translator service.",
		Long:  ``,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initLogging(viper.GetBool("verbose"))
		},
		Run: listLanguages,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s/config.yaml)", config.WorkDir))
	rootCmd.PersistentFlags().String("endpoint", translator.DefaultEndpoint, "Languages endpoint URL")
	rootCmd.PersistentFlags().Duration("timeout", translator.DefaultTimeout, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(configCmd)
}

func listLanguages(cmd *cobra.Command, args []string) {
	cfg := config.Config{
		Endpoint: viper.GetString("endpoint"),
		Timeout:  viper.GetDuration("timeout"),
	}

	cli := &translator.Client{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
	}
	langs, err := cli.Languages(cmd.Context())
	cobra.CheckErr(err)

	out, err := langs.JSON()
	cobra.CheckErr(err)

	fmt.Println(string(out))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, config.WorkDir))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	// Stdout carries the JSON output only, so the notice goes to stderr.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	w := os.Stderr

	logger := slog.New(
		slogformatter.NewFormatterHandler(
			slogformatter.HTTPRequestFormatter(false),
		)(
			prettylog.New(&slog.HandlerOptions{Level: level},
				prettylog.WithDestinationWriter(w),
				func() prettylog.Option {
					if isatty.IsTerminal(w.Fd()) {
						return prettylog.WithColor()
					}
					return func(_ *prettylog.Handler) {}
				}(),
			),
		),
	)
	slog.SetDefault(logger)
}

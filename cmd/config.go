/*
Copyright © 2024 plantree
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/plantree/bing-translator/internal/config"
	"github.com/plantree/bing-translator/internal/translator"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the application",
	Long:  `Configure the application by setting values required for the application to run.`,
	Run:   configure,
}

func init() {
	configCmd.Flags().StringP("endpoint", "", "", "Languages endpoint URL")
	configCmd.Flags().StringP("timeout", "", "", "HTTP request timeout (e.g. 30s)")
}

func configure(cmd *cobra.Command, args []string) {
	endpoint, err := cmd.Flags().GetString("endpoint")
	cobra.CheckErr(err)

	timeout, err := cmd.Flags().GetString("timeout")
	cobra.CheckErr(err)

	if endpoint == "" && timeout == "" {
		fmt.Printf("Languages endpoint URL (default: %s): ", translator.DefaultEndpoint)
		fmt.Scanln(&endpoint)
		if endpoint == "" {
			endpoint = translator.DefaultEndpoint
		}
		fmt.Printf("HTTP request timeout (default: %s): ", translator.DefaultTimeout)
		fmt.Scanln(&timeout)
		if timeout == "" {
			timeout = translator.DefaultTimeout.String()
		}
	}
	if timeout != "" {
		_, err = time.ParseDuration(timeout)
		cobra.CheckErr(err)
	}

	file := filepath.Join(os.Getenv("HOME"), config.WorkDir, "config.yaml")
	err = os.MkdirAll(filepath.Dir(file), 0700)
	cobra.CheckErr(err)

	if _, err := os.Stat(file); err == nil {
		err = os.Remove(file)
		cobra.CheckErr(err)
	}

	f, err := os.Create(file)
	cobra.CheckErr(err)
	defer f.Close()

	_, err = f.WriteString(fmt.Sprintf("endpoint: %s\ntimeout: %s\n", endpoint, timeout))
	cobra.CheckErr(err)
}

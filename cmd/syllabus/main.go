// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the syllabus CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/syllabus/internal/logging"
	"github.com/pdiddy/syllabus/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger receives diagnostics; configured in the root pre-run hook.
var logger = slog.Default()

// rootCmd is the base command for the syllabus CLI.
var rootCmd = &cobra.Command{
	Use:   "syllabus",
	Short: "Generate course syllabus documents",
	Long: `syllabus renders a course syllabus as a Word document: course title,
description, instructor, the list of topics and a dated schedule table.

Run "syllabus build" with no flags to render the built-in example course, or
pass --course with a YAML course definition.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		}, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("configuring logging: %w", err)
		}
		logger = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./syllabus.yaml or ~/.config/syllabus/syllabus.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("catalog-dir", ".syllabus", "directory for the build catalog database")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("catalog_dir", rootCmd.PersistentFlags().Lookup("catalog-dir"))
	viper.SetDefault("log.format", "text")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("syllabus")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "syllabus"))
		}
	}

	viper.SetEnvPrefix("SYLLABUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

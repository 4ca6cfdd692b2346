// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package main contains roster-cli main function to run the roster CLI.
package main

import (
	"log"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"

	"github.com/rosterio/roster/cli"
	rosdk "github.com/rosterio/roster/pkg/sdk/go"
)

func main() {
	sdkConf := rosdk.Config{
		PeopleURL:       "http://localhost:9400",
		TLSVerification: false,
	}

	// Root
	rootCmd := &cobra.Command{
		Use: "roster-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			conf, err := cli.ParseConfig(sdkConf)
			if err != nil {
				log.Fatalf("Failed to parse config: %s", err)
			}

			s := rosdk.NewSDK(conf)
			cli.SetSDK(s)
		},
	}

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	// API commands
	healthCmd := cli.NewHealthCmd()
	peopleCmd := cli.NewPeopleCmd()

	// Root Commands
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(peopleCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.PeopleURL,
		"people-url",
		"p",
		sdkConf.PeopleURL,
		"People service URL",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.ConfigPath,
		"config",
		"c",
		cli.ConfigPath,
		"Config path",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.TLSVerification,
		"tls-verification",
		"v",
		sdkConf.TLSVerification,
		"Check TLS certificate",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Command execution failed: %s", err)
	}
}

// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cmd wires the nfctl commands onto the SDK services.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/netfabric/netfabric-sdk-go/pkg/client"
	"github.com/netfabric/netfabric-sdk-go/pkg/config"
	netconfsvc "github.com/netfabric/netfabric-sdk-go/pkg/service/netconf"
)

var rootCmd = &cobra.Command{
	Use:           "nfctl",
	Short:         "NetFabric Cloud Manager configuration CLI",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to config file (default ~/.netfabric/config.yaml)")
	rootCmd.PersistentFlags().String("output", "table", "output format: table, json or yaml")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

// newTransport loads settings and builds the HTTP session shared by all
// commands.
func newTransport(cmd *cobra.Command) (*client.Client, error) {
	cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")
	debug, _ := cmd.Root().PersistentFlags().GetBool("debug")

	settings, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level := settings.LogLevel()
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return client.New(settings.ClientConfig(&logger))
}

func newInterfaceService(cmd *cobra.Command) (*netconfsvc.EthernetInterfaceService, error) {
	tr, err := newTransport(cmd)
	if err != nil {
		return nil, err
	}
	return netconfsvc.NewEthernetInterfaceService(tr)
}

func newNATRuleService(cmd *cobra.Command) (*netconfsvc.NATRuleService, error) {
	tr, err := newTransport(cmd)
	if err != nil {
		return nil, err
	}
	return netconfsvc.NewNATRuleService(tr)
}

// addContainerFlags registers the placement scope flags shared by list and
// fetch commands.
func addContainerFlags(cmd *cobra.Command) {
	cmd.Flags().String("folder", "", "folder to operate in")
	cmd.Flags().String("snippet", "", "snippet to operate in")
	cmd.Flags().String("device", "", "device to operate in")
}

// listOptionsFromFlags translates command flags into service list options.
// Only flags the user actually set become container parameters, so the
// service-side exclusivity checks see exactly what was requested.
func listOptionsFromFlags(cmd *cobra.Command) netconfsvc.ListOptions {
	opts := netconfsvc.ListOptions{}
	for _, name := range []string{"folder", "snippet", "device"} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		value, _ := cmd.Flags().GetString(name)
		switch name {
		case "folder":
			opts.Folder = &value
		case "snippet":
			opts.Snippet = &value
		case "device":
			opts.Device = &value
		}
	}

	if cmd.Flags().Lookup("exact-match") != nil {
		opts.ExactMatch, _ = cmd.Flags().GetBool("exact-match")
	}
	if cmd.Flags().Lookup("exclude-folder") != nil {
		opts.ExcludeFolders, _ = cmd.Flags().GetStringSlice("exclude-folder")
		opts.ExcludeSnippets, _ = cmd.Flags().GetStringSlice("exclude-snippet")
		opts.ExcludeDevices, _ = cmd.Flags().GetStringSlice("exclude-device")
	}
	return opts
}

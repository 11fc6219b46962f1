// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	model "github.com/netfabric/netfabric-sdk-go/pkg/api/model/netconf"
)

var interfaceCmd = &cobra.Command{
	Use:     "interface",
	Aliases: []string{"ethernet-interface", "iface"},
	Short:   "Ethernet interface operations",
}

var interfaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List Ethernet interfaces in a container",
	RunE:  runInterfaceList,
}

var interfaceGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get an Ethernet interface by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterfaceGet,
}

var interfaceFetchCmd = &cobra.Command{
	Use:   "fetch <name>",
	Short: "Fetch an Ethernet interface by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterfaceFetch,
}

var interfaceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an Ethernet interface from a JSON definition",
	RunE:  runInterfaceCreate,
}

var interfaceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an Ethernet interface by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterfaceDelete,
}

func init() {
	addContainerFlags(interfaceListCmd)
	interfaceListCmd.Flags().Bool("exact-match", false, "only objects defined directly in the container")
	interfaceListCmd.Flags().StringSlice("exclude-folder", nil, "folders to drop from the result")
	interfaceListCmd.Flags().StringSlice("exclude-snippet", nil, "snippets to drop from the result")
	interfaceListCmd.Flags().StringSlice("exclude-device", nil, "devices to drop from the result")

	addContainerFlags(interfaceFetchCmd)

	interfaceCreateCmd.Flags().String("data", "", "interface definition as inline JSON")
	interfaceCreateCmd.Flags().String("data-file", "", "interface definition file, '-' for stdin")

	rootCmd.AddCommand(interfaceCmd)
	interfaceCmd.AddCommand(interfaceListCmd)
	interfaceCmd.AddCommand(interfaceGetCmd)
	interfaceCmd.AddCommand(interfaceFetchCmd)
	interfaceCmd.AddCommand(interfaceCreateCmd)
	interfaceCmd.AddCommand(interfaceDeleteCmd)
}

func runInterfaceList(cmd *cobra.Command, args []string) error {
	svc, err := newInterfaceService(cmd)
	if err != nil {
		return err
	}

	interfaces, err := svc.List(cmd.Context(), listOptionsFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("listing interfaces: %w", err)
	}
	return printResult(cmd, interfaces, func(w io.Writer) error {
		return printInterfaceTable(w, interfaces)
	})
}

func runInterfaceGet(cmd *cobra.Command, args []string) error {
	svc, err := newInterfaceService(cmd)
	if err != nil {
		return err
	}

	iface, err := svc.GetByID(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting interface: %w", err)
	}
	return printResult(cmd, iface, func(w io.Writer) error {
		return printInterfaceTable(w, []model.EthernetInterface{*iface})
	})
}

func runInterfaceFetch(cmd *cobra.Command, args []string) error {
	svc, err := newInterfaceService(cmd)
	if err != nil {
		return err
	}

	iface, err := svc.Fetch(cmd.Context(), args[0], listOptionsFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("fetching interface: %w", err)
	}
	return printResult(cmd, iface, func(w io.Writer) error {
		return printInterfaceTable(w, []model.EthernetInterface{*iface})
	})
}

func runInterfaceCreate(cmd *cobra.Command, args []string) error {
	body, err := readBodyInput(cmd)
	if err != nil {
		return err
	}

	var in model.EthernetInterfaceCreate
	if err := json.Unmarshal(body, &in); err != nil {
		return fmt.Errorf("parsing interface definition: %w", err)
	}

	svc, err := newInterfaceService(cmd)
	if err != nil {
		return err
	}

	created, err := svc.Create(cmd.Context(), &in)
	if err != nil {
		return fmt.Errorf("creating interface: %w", err)
	}

	fmt.Fprintf(os.Stderr, "interface created: %s (%s)\n", created.Name, created.ID)
	return printResult(cmd, created, func(w io.Writer) error {
		return printInterfaceTable(w, []model.EthernetInterface{*created})
	})
}

func runInterfaceDelete(cmd *cobra.Command, args []string) error {
	svc, err := newInterfaceService(cmd)
	if err != nil {
		return err
	}

	if err := svc.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting interface: %w", err)
	}
	fmt.Fprintf(os.Stderr, "interface deleted: %s\n", args[0])
	return nil
}

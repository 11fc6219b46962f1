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

var natRuleCmd = &cobra.Command{
	Use:     "nat-rule",
	Aliases: []string{"nat"},
	Short:   "NAT rule operations",
}

var natRuleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List NAT rules in a container",
	RunE:  runNATRuleList,
}

var natRuleGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a NAT rule by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runNATRuleGet,
}

var natRuleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a NAT rule from a JSON definition",
	RunE:  runNATRuleCreate,
}

var natRuleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a NAT rule by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runNATRuleDelete,
}

var natRuleMoveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Reposition a NAT rule within its rulebase",
	Args:  cobra.ExactArgs(1),
	RunE:  runNATRuleMove,
}

func init() {
	addContainerFlags(natRuleListCmd)
	natRuleListCmd.Flags().Bool("exact-match", false, "only objects defined directly in the container")
	natRuleListCmd.Flags().StringSlice("exclude-folder", nil, "folders to drop from the result")
	natRuleListCmd.Flags().StringSlice("exclude-snippet", nil, "snippets to drop from the result")
	natRuleListCmd.Flags().StringSlice("exclude-device", nil, "devices to drop from the result")

	natRuleCreateCmd.Flags().String("data", "", "rule definition as inline JSON")
	natRuleCreateCmd.Flags().String("data-file", "", "rule definition file, '-' for stdin")

	natRuleMoveCmd.Flags().String("destination", "", "top, bottom, before or after (required)")
	natRuleMoveCmd.Flags().String("rulebase", "pre", "rulebase the rule lives in")
	natRuleMoveCmd.Flags().String("destination-rule", "", "anchor rule for before/after moves")
	natRuleMoveCmd.MarkFlagRequired("destination")

	rootCmd.AddCommand(natRuleCmd)
	natRuleCmd.AddCommand(natRuleListCmd)
	natRuleCmd.AddCommand(natRuleGetCmd)
	natRuleCmd.AddCommand(natRuleCreateCmd)
	natRuleCmd.AddCommand(natRuleDeleteCmd)
	natRuleCmd.AddCommand(natRuleMoveCmd)
}

func runNATRuleList(cmd *cobra.Command, args []string) error {
	svc, err := newNATRuleService(cmd)
	if err != nil {
		return err
	}

	rules, err := svc.List(cmd.Context(), listOptionsFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("listing NAT rules: %w", err)
	}
	return printResult(cmd, rules, func(w io.Writer) error {
		return printNATRuleTable(w, rules)
	})
}

func runNATRuleGet(cmd *cobra.Command, args []string) error {
	svc, err := newNATRuleService(cmd)
	if err != nil {
		return err
	}

	rule, err := svc.GetByID(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting NAT rule: %w", err)
	}
	return printResult(cmd, rule, func(w io.Writer) error {
		return printNATRuleTable(w, []model.NATRule{*rule})
	})
}

func runNATRuleCreate(cmd *cobra.Command, args []string) error {
	body, err := readBodyInput(cmd)
	if err != nil {
		return err
	}

	var in model.NATRuleCreate
	if err := json.Unmarshal(body, &in); err != nil {
		return fmt.Errorf("parsing rule definition: %w", err)
	}

	svc, err := newNATRuleService(cmd)
	if err != nil {
		return err
	}

	created, err := svc.Create(cmd.Context(), &in)
	if err != nil {
		return fmt.Errorf("creating NAT rule: %w", err)
	}

	fmt.Fprintf(os.Stderr, "NAT rule created: %s (%s)\n", created.Name, created.ID)
	return printResult(cmd, created, func(w io.Writer) error {
		return printNATRuleTable(w, []model.NATRule{*created})
	})
}

func runNATRuleDelete(cmd *cobra.Command, args []string) error {
	svc, err := newNATRuleService(cmd)
	if err != nil {
		return err
	}

	if err := svc.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting NAT rule: %w", err)
	}
	fmt.Fprintf(os.Stderr, "NAT rule deleted: %s\n", args[0])
	return nil
}

func runNATRuleMove(cmd *cobra.Command, args []string) error {
	destination, _ := cmd.Flags().GetString("destination")
	rulebase, _ := cmd.Flags().GetString("rulebase")

	move := model.NATRuleMove{
		Destination: model.MoveDestination(destination),
		Rulebase:    rulebase,
	}
	if cmd.Flags().Changed("destination-rule") {
		anchor, _ := cmd.Flags().GetString("destination-rule")
		move.DestinationRule = &anchor
	}

	svc, err := newNATRuleService(cmd)
	if err != nil {
		return err
	}

	if err := svc.Move(cmd.Context(), args[0], &move); err != nil {
		return fmt.Errorf("moving NAT rule: %w", err)
	}
	fmt.Fprintf(os.Stderr, "NAT rule moved: %s -> %s\n", args[0], destination)
	return nil
}

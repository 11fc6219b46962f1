// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	model "github.com/netfabric/netfabric-sdk-go/pkg/api/model/netconf"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	// YAML output goes through JSON first so the API field aliases are
	// used instead of Go field names.
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// printResult renders v according to the --output flag, falling back to
// the supplied table printer.
func printResult(cmd *cobra.Command, v any, table func(io.Writer) error) error {
	output, _ := cmd.Root().PersistentFlags().GetString("output")
	switch output {
	case "json":
		return printJSON(os.Stdout, v)
	case "yaml":
		return printYAML(os.Stdout, v)
	default:
		return table(os.Stdout)
	}
}

func interfaceMode(spec model.EthernetInterfaceSpec) string {
	switch {
	case spec.Tap != nil:
		return "tap"
	case spec.Layer2 != nil:
		return "layer2"
	case spec.Layer3 != nil:
		return "layer3"
	default:
		return "-"
	}
}

func containerValue(folder, snippet, device string) string {
	switch {
	case folder != "":
		return "folder/" + folder
	case snippet != "":
		return "snippet/" + snippet
	case device != "":
		return "device/" + device
	default:
		return "-"
	}
}

func printInterfaceTable(w io.Writer, interfaces []model.EthernetInterface) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMODE\tCONTAINER\tCOMMENT")
	for _, iface := range interfaces {
		comment := ""
		if iface.Comment != nil {
			comment = *iface.Comment
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			iface.ID, iface.Name, interfaceMode(iface.EthernetInterfaceSpec),
			containerValue(iface.Containers()), comment)
	}
	return tw.Flush()
}

func printNATRuleTable(w io.Writer, rules []model.NATRule) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCONTAINER\tDISABLED")
	for _, rule := range rules {
		natType := string(model.NATTypeIPv4)
		if rule.NATType != nil {
			natType = string(*rule.NATType)
		}
		disabled := false
		if rule.Disabled != nil {
			disabled = *rule.Disabled
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
			rule.ID, rule.Name, natType, containerValue(rule.Containers()), disabled)
	}
	return tw.Flush()
}

// readBodyInput reads a request body from --data or --data-file. Pass
// "--data-file -" to read from stdin.
func readBodyInput(cmd *cobra.Command) ([]byte, error) {
	data, _ := cmd.Flags().GetString("data")
	dataFile, _ := cmd.Flags().GetString("data-file")

	if data != "" && dataFile != "" {
		return nil, fmt.Errorf("specify either --data or --data-file, not both")
	}
	if data != "" {
		return []byte(data), nil
	}
	if dataFile == "" {
		return nil, fmt.Errorf("one of --data or --data-file is required")
	}
	if dataFile == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(dataFile)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	return b, nil
}

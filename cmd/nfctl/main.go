// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// nfctl is the NetFabric Cloud Manager configuration CLI. It drives the
// SDK services against the management API using the same config file and
// environment settings as the SDK itself.
package main

import (
	"os"

	"github.com/netfabric/netfabric-sdk-go/cmd/nfctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

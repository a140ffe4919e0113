// Copyright (c) 2026 Contributors to the Eclipse Foundation
//
// See the NOTICE file(s) distributed with this work for additional
// information regarding copyright ownership.
//
// This program and the accompanying materials are made available under the
// terms of the Apache Software License 2.0 which is available at
// https://www.apache.org/licenses/LICENSE-2.0, or the MIT license
// which is available at https://opensource.org/licenses/MIT.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Command iceoryx2-introspect is a thin diagnostic entry point over a
// host's shared-memory registry: it lists live nodes and services and
// exits. It is not a general management CLI -- there is nothing here to
// create, open, or mutate anything.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/logging"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/node"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
)

func main() {
	dev := flag.Bool("dev", false, "use development (console, debug-level) logging instead of production JSON logging")
	flag.Parse()

	if *dev {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logging.Configure(l)
	}
	log := logging.Named("introspect")
	defer log.Sync() //nolint:errcheck

	if err := listNodes(); err != nil {
		log.Error("listing nodes failed", zap.Error(err))
	}
	if err := listServices(); err != nil {
		log.Error("listing services failed", zap.Error(err))
	}
}

func listNodes() error {
	ids, err := node.List()
	if err != nil {
		return err
	}

	fmt.Printf("NODES (%d)\n", len(ids))
	for _, id := range ids {
		state, err := node.StateOf(id)
		if err != nil {
			fmt.Printf("  %s  <state error: %v>\n", id, err)
			continue
		}
		details, err := node.ReadDetails(id)
		if err != nil {
			fmt.Printf("  %s  %-13s <details error: %v>\n", id, state, err)
			continue
		}
		fmt.Printf("  %s  %-13s %s\n", id, state, details.Name)
	}
	return nil
}

func listServices() error {
	ids, err := service.ListIds()
	if err != nil {
		return err
	}

	global := config.DefaultGlobal()
	fmt.Printf("SERVICES (%d)\n", len(ids))
	for _, id := range ids {
		summary, err := service.Inspect(id, global)
		if err != nil {
			fmt.Printf("  %s  <inspect error: %v>\n", id, err)
			continue
		}
		fmt.Printf("  %s  %-24q pattern=%-16s payload=%-28s ports=%s\n",
			id, summary.Name, summary.Pattern, summary.PayloadType, portCounts(summary))
	}
	return nil
}

func portCounts(s service.Summary) string {
	roles := [...]string{"pub", "sub", "notif", "listen", "client", "server"}
	out := ""
	for i, n := range s.Ports {
		if i >= len(roles) {
			break
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", roles[i], n)
	}
	return out
}

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

package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	logger *zap.Logger
)

// L returns the module-wide logger, lazily building a production zap
// config on first use. Callers that want a different configuration
// (e.g. cmd/iceoryx2-introspect running with development-style console
// output) should call Configure before anything else in the module logs.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	}
	return logger
}

// Configure replaces the module-wide logger. Intended to be called once,
// early in a program's main(), before any component under this module
// has logged anything.
func Configure(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Named returns a child logger scoped to component, e.g. logging.Named("node.monitor").
func Named(component string) *zap.Logger {
	return L().Named(component)
}

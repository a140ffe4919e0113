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

// Package logging provides this module's single structured logger, a
// thin wrapper over go.uber.org/zap shared by every package that needs
// to report something a caller wouldn't otherwise see: a dropped sample
// under the default expired-connection retention policy, or a service
// builder's open-or-create retry budget running out.
package logging

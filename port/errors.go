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

package port

import "fmt"

// ErrMaxActiveRequestsReached is returned by Client.LoanRequest once the
// client already has MaxActiveRequests requests outstanding without a
// received response.
var ErrMaxActiveRequestsReached = fmt.Errorf("port: client already has the maximum number of active requests outstanding")

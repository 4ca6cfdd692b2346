// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package cli

import rosdk "github.com/rosterio/roster/pkg/sdk/go"

// Keep SDK handle in global var.
var sdk rosdk.SDK

// SetSDK sets roster SDK instance.
func SetSDK(s rosdk.SDK) {
	sdk = s
}

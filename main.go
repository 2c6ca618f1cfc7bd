// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/hi5tech/access-service/cmd"

func main() {
	cmd.Execute()
}

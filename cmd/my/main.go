/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/my-cli/my/pkg/cli"
)

func main() {
	cli.Execute()
}

/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/facebook/wallclock/clock"
)

var offsetCmd = &cobra.Command{
	Use:   "offset",
	Short: "Print offset of local time from UTC",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		printOffset(os.Stdout, clock.System())
	},
}

func init() {
	RootCmd.AddCommand(offsetCmd)
}

// formatOffset formats seconds as ±HH:MM
func formatOffset(sec int64) string {
	sign := '+'
	if sec < 0 {
		sign = '-'
		sec = -sec
	}
	return fmt.Sprintf("%c%02d:%02d", sign, sec/3600, sec%3600/60)
}

func printOffset(w io.Writer, c *clock.Clock) {
	offset, ok := c.LocalUTCOffsetSeconds()
	if !ok {
		fmt.Fprintln(w, "Offset: unknown")
		return
	}
	fmt.Fprintf(w, "Offset: %ds (%s)\n", offset, formatOffset(offset))
}

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

var resolutionCmd = &cobra.Command{
	Use:   "resolution",
	Short: "Print realtime clock resolution reported by the OS",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		printResolution(os.Stdout, clock.System())
	},
}

func init() {
	RootCmd.AddCommand(resolutionCmd)
}

func printResolution(w io.Writer, c *clock.Clock) {
	res, ok := c.Resolution()
	if !ok {
		fmt.Fprintln(w, "Resolution: unknown")
		return
	}
	fmt.Fprintf(w, "Resolution: %s (%v)\n", res, res.Duration())
}

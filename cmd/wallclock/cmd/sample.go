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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/wallclock/clock"
)

// flags
var samplesFlag int

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Read the clock back to back and print how it advances",
	Long: `Read the clock back to back and print how it advances.
The resolution reported by the OS is not always what readers observe, this measures it.`,
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := printSample(os.Stdout, clock.System(), samplesFlag); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntVarP(&samplesFlag, "samples", "n", 1000, "number of back to back reads")
}

func printSample(w io.Writer, c *clock.Clock, n int) error {
	g, err := c.Sample(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Samples: %d\n", g.Samples)
	fmt.Fprintf(w, "Steps: %d\n", g.Steps)
	fmt.Fprintf(w, "Backward steps: %d\n", g.BackwardSteps)
	if g.Steps == 0 {
		fmt.Fprintln(w, "Clock didn't advance")
		return nil
	}
	fmt.Fprintf(w, "Step min/median/max: %v/%v/%v\n", g.Min, g.Median, g.Max)
	fmt.Fprintf(w, "Step mean: %v, stddev: %v\n", g.Mean, g.Stddev)
	return nil
}

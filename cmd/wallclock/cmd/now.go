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
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/wallclock/clock"
)

// flags
var nowRawFlag bool

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print current time as (day, picosecond of day) read from the OS realtime clock",
	Run:   runNowCmd,
}

func init() {
	RootCmd.AddCommand(nowCmd)
	nowCmd.Flags().BoolVarP(&nowRawFlag, "raw", "r", false, "also print the sample as returned by the OS")
}

func runNowCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	if err := printNow(os.Stdout, clock.System(), nowRawFlag); err != nil {
		log.Fatal(err)
	}
}

func printNow(w io.Writer, c *clock.Clock, raw bool) error {
	header := []string{"Source", "Day", "Ps of day", "UTC"}
	if !raw {
		now, err := c.Now()
		if err != nil {
			return err
		}
		return renderNow(w, header, nowRow(c, now))
	}

	sample, err := c.Source().Read()
	if err != nil {
		return err
	}
	log.Debugf("raw sample: %s", spew.Sdump(sample))
	now, err := clock.Normalize(sample)
	if err != nil {
		return err
	}
	header = append(header, "Seconds", "Fraction")
	row := append(nowRow(c, now), fmt.Sprint(sample.Seconds), fmt.Sprintf("%d%s", sample.Fraction, sample.Unit))
	return renderNow(w, header, row)
}

func nowRow(c *clock.Clock, now clock.Stamp) []string {
	return []string{
		c.Source().Name(),
		fmt.Sprint(now.Day),
		fmt.Sprint(now.Ps),
		now.Time().Format(time.RFC3339Nano),
	}
}

func renderNow(w io.Writer, header, row []string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	if err := table.Append(row); err != nil {
		return fmt.Errorf("adding row: %w", err)
	}
	return table.Render()
}

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
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/facebook/wallclock/cmd/wallclock/checker"
)

// flags
var (
	diagSamplesFlag    int
	diagNTPServerFlag  string
	diagNTPTimeoutFlag time.Duration
)

type status int

// possible check results
const (
	OK status = iota
	WARN
	FAIL
	CRITICAL
)

// diagnoser is function that does checks on checker.Result
type diagnoser func(r *checker.Result) (status, string)

func statusString(s status) string {
	switch s {
	case OK:
		return color.GreenString("[ OK ]")
	case WARN:
		return color.YellowString("[WARN]")
	}
	return color.RedString("[FAIL]")
}

func fmtThreshold(warnThreshold any) string {
	return color.BlueString("%v", warnThreshold)
}

// generic function to check value against some thresholds
func checkAgainstThreshold[T constraints.Ordered](name string, value, warnThreshold, failThreshold T, explanation string) (status, string) {
	msgTemplate := "%s is %s, we expect it to be within %s%s"
	thresholdStr := fmtThreshold(warnThreshold)

	if value > failThreshold {
		return FAIL, fmt.Sprintf(
			msgTemplate,
			name,
			color.RedString("%v", value),
			thresholdStr,
			". "+explanation,
		)
	}
	if value > warnThreshold {
		return WARN, fmt.Sprintf(
			msgTemplate,
			name,
			color.YellowString("%v", value),
			thresholdStr,
			". "+explanation,
		)
	}
	return OK, fmt.Sprintf(
		msgTemplate,
		name,
		color.GreenString("%v", value),
		thresholdStr,
		"",
	)
}

func checkReadable(r *checker.Result) (status, string) {
	if r.NowErr != nil {
		return CRITICAL, fmt.Sprintf("Can't read clock via %s: %v", r.Source, r.NowErr)
	}
	return OK, fmt.Sprintf("Clock reads %s via %s", color.BlueString(r.Now.Time().Format(time.RFC3339Nano)), r.Source)
}

func checkResolution(r *checker.Result) (status, string) {
	if !r.ResolutionKnown {
		return WARN, "Clock resolution is unknown"
	}
	// Modern hardware gives ns resolution, 1ms is what old kernels with low HZ and no hrtimers get
	const warnThreshold = time.Millisecond
	const failThreshold = 10 * time.Millisecond
	return checkAgainstThreshold(
		"Clock resolution",
		r.Resolution.Duration(),
		warnThreshold,
		failThreshold,
		"Resolution is the smallest clock increment the OS reports",
	)
}

func checkOffset(r *checker.Result) (status, string) {
	if !r.OffsetKnown {
		return WARN, "Local time offset from UTC is unknown"
	}
	// all zones in use are whole multiples of 15 minutes away from UTC
	if r.Offset%(15*60) != 0 {
		return WARN, fmt.Sprintf("Local time offset from UTC is %s, which is not a multiple of 15 minutes", color.YellowString(formatOffset(r.Offset)))
	}
	return OK, fmt.Sprintf("Local time offset from UTC is %s", color.GreenString(formatOffset(r.Offset)))
}

func checkBootTime(r *checker.Result) (status, string) {
	if r.BootTimeErr != nil {
		return WARN, fmt.Sprintf("No host boot time available: %v", r.BootTimeErr)
	}
	if r.NowErr != nil {
		return WARN, "No clock reading to compare host boot time to"
	}
	now := r.Now.Time()
	if now.Before(r.BootTime) {
		return FAIL, fmt.Sprintf("Clock (%v) is behind host boot time (%v)", now, r.BootTime)
	}
	return OK, fmt.Sprintf("Clock is %v past host boot time", now.Sub(r.BootTime).Truncate(time.Second))
}

func checkGranularity(r *checker.Result) (status, string) {
	if r.GranularityErr != nil {
		return FAIL, fmt.Sprintf("Failed to sample clock: %v", r.GranularityErr)
	}
	g := r.Granularity
	if g.Steps == 0 {
		return FAIL, fmt.Sprintf("Clock didn't advance over %d back to back reads", g.Samples)
	}
	// a tick based clock advances in steps of 1/HZ
	const warnThreshold = time.Millisecond
	const failThreshold = 16 * time.Millisecond
	return checkAgainstThreshold(
		"Median observed clock step",
		g.Median,
		warnThreshold,
		failThreshold,
		"Observed step is how far the clock moves between back to back reads",
	)
}

func checkBackwardSteps(r *checker.Result) (status, string) {
	if r.GranularityErr != nil {
		return WARN, "No samples to look for backward steps in"
	}
	if n := r.Granularity.BackwardSteps; n > 0 {
		return WARN, fmt.Sprintf("Clock went backwards %s times over %d back to back reads", color.YellowString("%d", n), r.Granularity.Samples)
	}
	return OK, "Clock never went backwards"
}

func checkNTPOffset(r *checker.Result) (status, string) {
	if r.NTPErr != nil {
		return WARN, fmt.Sprintf("No NTP offset data available: %v", r.NTPErr)
	}
	offset := r.NTPOffset
	if offset < 0 {
		offset = -offset
	}
	const warnThreshold = 100 * time.Millisecond
	const failThreshold = time.Second
	return checkAgainstThreshold(
		fmt.Sprintf("Offset from %s", r.NTPServer),
		offset,
		warnThreshold,
		failThreshold,
		"Offset is the difference between our clock and the NTP server",
	)
}

var diagnosers = []diagnoser{
	checkReadable,
	checkResolution,
	checkOffset,
	checkBootTime,
}

// expandDiagnosers returns extra diagnosers based on what was collected
func expandDiagnosers(r *checker.Result) []diagnoser {
	extra := []diagnoser{}
	if r.Granularity.Samples > 0 || r.GranularityErr != nil {
		extra = append(extra, checkGranularity, checkBackwardSteps)
	}
	if r.NTPServer != "" {
		extra = append(extra, checkNTPOffset)
	}
	return extra
}

func runDiagnosers(r *checker.Result, toRun []diagnoser) int {
	failed := 0
	for _, check := range toRun {
		status, msg := check(r)
		if status != OK {
			failed++
		}
		switch status {
		case CRITICAL:
			fmt.Printf("%s %s\n", statusString(status), msg)
			return 127
		default:
			fmt.Printf("%s %s\n", statusString(status), msg)
		}
	}
	return failed
}

func runAllDiagnosers(r *checker.Result) int {
	toRun := append([]diagnoser{}, diagnosers...)
	toRun = append(toRun, expandDiagnosers(r)...)
	return runDiagnosers(r, toRun)
}

func init() {
	RootCmd.AddCommand(diagCmd)
	diagCmd.Flags().IntVarP(&diagSamplesFlag, "samples", "n", 1000, "number of back to back reads to measure clock steps, 0 disables")
	diagCmd.Flags().StringVar(&diagNTPServerFlag, "ntp", "", "NTP server to compare the clock against, empty disables")
	diagCmd.Flags().DurationVar(&diagNTPTimeoutFlag, "ntp-timeout", 5*time.Second, "timeout for the NTP query")
}

var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Perform basic clock diagnosis, report in human-readable form.",
	Long: `Perform basic clock diagnosis, report in human-readable form.
Reads the realtime clock, its resolution and the local time offset, and prints the results of a set of checks against them.
Exit code will be equal to sum of failed check, or 127 in case the clock can't be read.
`,
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		result := checker.RunCheck(checker.Options{
			Samples:    diagSamplesFlag,
			NTPServer:  diagNTPServerFlag,
			NTPTimeout: diagNTPTimeoutFlag,
		})
		exitCode := runAllDiagnosers(result)
		os.Exit(exitCode)
	},
}

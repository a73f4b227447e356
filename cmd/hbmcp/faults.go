// Copyright 2026 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/honeybadger-mcp/internal/contract"
	"github.com/kraklabs/honeybadger-mcp/internal/errors"
	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// faultIDs parses the two leading positional arguments shared by all
// per-fault commands.
func faultIDs(fs *flag.FlagSet, globals GlobalFlags) (int, int) {
	if fs.NArg() < 2 {
		errors.FatalError(errors.NewInputError(
			"Missing project and fault IDs",
			"Expected <project-id> <fault-id> as positional arguments",
			"See --help for usage",
		), globals.JSON)
	}
	var projectID, faultID int
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &projectID); err != nil {
		errors.FatalError(errors.NewInputError(
			"Invalid project ID",
			fmt.Sprintf("%q is not an integer", fs.Arg(0)),
			"Pass a numeric ID",
		), globals.JSON)
	}
	if _, err := fmt.Sscanf(fs.Arg(1), "%d", &faultID); err != nil {
		errors.FatalError(errors.NewInputError(
			"Invalid fault ID",
			fmt.Sprintf("%q is not an integer", fs.Arg(1)),
			"Pass a numeric ID",
		), globals.JSON)
	}
	return projectID, faultID
}

// projectIDArg parses the single leading project-ID argument.
func projectIDArg(fs *flag.FlagSet, globals GlobalFlags) int {
	if fs.NArg() < 1 {
		errors.FatalError(errors.NewInputError(
			"Missing project ID",
			"Expected <project-id> as the first positional argument",
			"See --help for usage",
		), globals.JSON)
	}
	var projectID int
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &projectID); err != nil {
		errors.FatalError(errors.NewInputError(
			"Invalid project ID",
			fmt.Sprintf("%q is not an integer", fs.Arg(0)),
			"Pass a numeric ID",
		), globals.JSON)
	}
	return projectID
}

// runFaults executes the 'faults' CLI command.
func runFaults(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("faults", flag.ExitOnError)
	query := fs.String("query", "", `Search query, e.g. "environment:production -is:resolved"`)
	limit := fs.Int("limit", honeybadger.DefaultFaultLimit, "Maximum number of results")
	order := fs.String("order", "recent", "Sort order: "+strings.Join(contract.Orders, " or "))

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp faults <project-id> [options]

Options:
%s`, fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if !contract.ValidOrder(*order) {
		errors.FatalError(errors.NewInputError(
			"Invalid order",
			fmt.Sprintf("order must be one of: %s", strings.Join(contract.Orders, ", ")),
			"Use --order recent or --order frequent",
		), globals.JSON)
	}

	projectID := projectIDArg(fs, globals)

	_, client := loadConfigAndClient(globals)
	raw, err := client.ListFaults(context.Background(), projectID, *query, *limit, *order)
	emit(raw, err, globals)
}

// runFault executes the 'fault' CLI command.
func runFault(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("fault", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hbmcp fault <project-id> <fault-id>")
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID, faultID := faultIDs(fs, globals)

	_, client := loadConfigAndClient(globals)
	raw, err := client.GetFault(context.Background(), projectID, faultID)
	emit(raw, err, globals)
}

// runFaultSummary executes the 'fault-summary' CLI command.
func runFaultSummary(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("fault-summary", flag.ExitOnError)
	query := fs.String("query", "", "Search query to scope the summary")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp fault-summary <project-id> [options]

Options:
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID := projectIDArg(fs, globals)

	_, client := loadConfigAndClient(globals)
	raw, err := client.FaultSummary(context.Background(), projectID, *query)
	emit(raw, err, globals)
}

// runUpdateFault executes the 'update-fault' CLI command. Tri-state flags
// take "true"/"false" strings so an explicit false is transmitted.
func runUpdateFault(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("update-fault", flag.ExitOnError)
	resolved := fs.String("resolved", "", "true or false: mark the fault resolved/unresolved")
	ignored := fs.String("ignored", "", "true or false: ignore/unignore the fault")
	assigneeID := fs.Int("assignee-id", 0, "User ID to assign the fault to")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp update-fault <project-id> <fault-id> [options]

Only the supplied fields are changed.

Options:
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID, faultID := faultIDs(fs, globals)

	params := honeybadger.FaultParams{
		Resolved: parseBoolFlag(*resolved),
		Ignored:  parseBoolFlag(*ignored),
	}
	if *assigneeID != 0 {
		params.AssigneeID = assigneeID
	}

	_, client := loadConfigAndClient(globals)
	raw, err := client.UpdateFault(context.Background(), projectID, faultID, params)
	emit(raw, err, globals)
}

// runDeleteFault executes the 'delete-fault' CLI command.
func runDeleteFault(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("delete-fault", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hbmcp delete-fault <project-id> <fault-id> --yes")
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID, faultID := faultIDs(fs, globals)
	if !*yes {
		errors.FatalError(errors.NewInputError(
			"Refusing to delete without confirmation",
			fmt.Sprintf("Deleting fault %d removes all of its notices permanently", faultID),
			fmt.Sprintf("Run: hbmcp delete-fault %d %d --yes", projectID, faultID),
		), globals.JSON)
	}

	_, client := loadConfigAndClient(globals)
	raw, err := client.DeleteFault(context.Background(), projectID, faultID)
	emit(raw, err, globals)
}

// runFaultOccurrences executes the 'fault-occurrences' CLI command.
func runFaultOccurrences(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("fault-occurrences", flag.ExitOnError)
	period := fs.String("period", "day", "Time bucket: "+strings.Join(contract.Periods, ", "))

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp fault-occurrences <project-id> <fault-id> [options]

Options:
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if !contract.ValidPeriod(*period) {
		errors.FatalError(errors.NewInputError(
			"Invalid period",
			fmt.Sprintf("period must be one of: %s", strings.Join(contract.Periods, ", ")),
			"Use e.g. --period day",
		), globals.JSON)
	}

	projectID, faultID := faultIDs(fs, globals)

	_, client := loadConfigAndClient(globals)
	raw, err := client.FaultOccurrences(context.Background(), projectID, faultID, *period)
	emit(raw, err, globals)
}

// runFaultNotices executes the 'fault-notices' CLI command.
func runFaultNotices(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("fault-notices", flag.ExitOnError)
	createdAfter := fs.Int64("created-after", 0, "Unix timestamp lower bound")
	createdBefore := fs.Int64("created-before", 0, "Unix timestamp upper bound")
	limit := fs.Int("limit", honeybadger.DefaultFaultLimit, "Number of results (max 25)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp fault-notices <project-id> <fault-id> [options]

Options:
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID, faultID := faultIDs(fs, globals)

	params := honeybadger.NoticeListParams{Limit: *limit}
	if *createdAfter != 0 {
		params.CreatedAfter = createdAfter
	}
	if *createdBefore != 0 {
		params.CreatedBefore = createdBefore
	}

	_, client := loadConfigAndClient(globals)
	raw, err := client.FaultNotices(context.Background(), projectID, faultID, params)
	emit(raw, err, globals)
}

// runNotice executes the 'notice' CLI command.
func runNotice(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("notice", flag.ExitOnError)
	full := fs.Bool("full", false, "Return the full notice payload instead of the compact form")
	backtraceLimit := fs.Int("backtrace-limit", honeybadger.DefaultBacktraceLimit, "Backtrace frames kept in the compact form")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp notice <project-id> <fault-id> <notice-id> [options]

Options:
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID, faultID := faultIDs(fs, globals)
	if fs.NArg() < 3 {
		errors.FatalError(errors.NewInputError(
			"Missing notice ID",
			"Expected <notice-id> as the third positional argument",
			"Run: hbmcp fault-notices <project-id> <fault-id> to list notice IDs",
		), globals.JSON)
	}
	noticeID := fs.Arg(2)

	_, client := loadConfigAndClient(globals)
	raw, err := client.GetNotice(context.Background(), projectID, faultID, noticeID, !*full, *backtraceLimit)
	emit(raw, err, globals)
}

// runPauseFault executes the 'pause-fault' CLI command.
func runPauseFault(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("pause-fault", flag.ExitOnError)
	window := fs.String("time", "", "Time window: "+strings.Join(contract.PauseWindows, ", "))
	count := fs.Int("count", 0, "Occurrence count: 10, 100, or 1000")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp pause-fault <project-id> <fault-id> [options]

Exactly one of --time or --count is required; --time wins when both
are given.

Options:
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *window != "" && !contract.ValidPauseWindow(*window) {
		errors.FatalError(errors.NewInputError(
			"Invalid pause window",
			fmt.Sprintf("time must be one of: %s", strings.Join(contract.PauseWindows, ", ")),
			"Use e.g. --time hour",
		), globals.JSON)
	}
	if *count != 0 && !contract.ValidPauseCount(*count) {
		errors.FatalError(errors.NewInputError(
			"Invalid pause count",
			"count must be 10, 100, or 1000",
			"Use e.g. --count 100",
		), globals.JSON)
	}

	projectID, faultID := faultIDs(fs, globals)

	_, client := loadConfigAndClient(globals)
	raw, err := client.PauseFault(context.Background(), projectID, faultID, *window, *count)
	emit(raw, err, globals)
}

// runUnpauseFault executes the 'unpause-fault' CLI command.
func runUnpauseFault(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("unpause-fault", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hbmcp unpause-fault <project-id> <fault-id>")
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID, faultID := faultIDs(fs, globals)

	_, client := loadConfigAndClient(globals)
	raw, err := client.UnpauseFault(context.Background(), projectID, faultID)
	emit(raw, err, globals)
}

// runBulkResolve executes the 'bulk-resolve' CLI command.
func runBulkResolve(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("bulk-resolve", flag.ExitOnError)
	query := fs.String("query", "", "Search query to filter which faults to resolve")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp bulk-resolve <project-id> [options]

Marks every matching fault as resolved.

Options:
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID := projectIDArg(fs, globals)
	if !*yes {
		errors.FatalError(errors.NewInputError(
			"Refusing to bulk-resolve without confirmation",
			fmt.Sprintf("This resolves every matching fault in project %d", projectID),
			fmt.Sprintf("Run: hbmcp bulk-resolve %d --yes", projectID),
		), globals.JSON)
	}

	_, client := loadConfigAndClient(globals)
	raw, err := client.BulkResolveFaults(context.Background(), projectID, *query)
	emit(raw, err, globals)
}

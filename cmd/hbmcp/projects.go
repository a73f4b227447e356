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
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kraklabs/honeybadger-mcp/internal/contract"
	"github.com/kraklabs/honeybadger-mcp/internal/errors"
	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// requireIntArg parses the positional argument at index as an integer ID.
func requireIntArg(fs *flag.FlagSet, index int, name string, globals GlobalFlags) int {
	if fs.NArg() <= index {
		errors.FatalError(errors.NewInputError(
			fmt.Sprintf("Missing %s", name),
			fmt.Sprintf("Expected %s as positional argument %d", name, index+1),
			"See --help for usage",
		), globals.JSON)
	}
	n, err := strconv.Atoi(fs.Arg(index))
	if err != nil {
		errors.FatalError(errors.NewInputError(
			fmt.Sprintf("Invalid %s", name),
			fmt.Sprintf("%q is not an integer", fs.Arg(index)),
			"Pass a numeric ID",
		), globals.JSON)
	}
	return n
}

// runProjects executes the 'projects' CLI command.
func runProjects(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("projects", flag.ExitOnError)
	accountID := fs.Int("account-id", 0, "Filter projects by account ID")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp projects [options]

Lists all projects visible to the configured token.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	_, client := loadConfigAndClient(globals)

	var account *int
	if *accountID != 0 {
		account = accountID
	}
	raw, err := client.ListProjects(context.Background(), account)
	emit(raw, err, globals)
}

// runProject executes the 'project' CLI command.
func runProject(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hbmcp project <project-id>")
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID := requireIntArg(fs, 0, "project ID", globals)

	_, client := loadConfigAndClient(globals)
	raw, err := client.GetProject(context.Background(), projectID)
	emit(raw, err, globals)
}

// projectFlags registers the shared create/update project flags on fs and
// returns a builder that assembles ProjectParams from the parsed values.
func projectFlags(fs *flag.FlagSet) func() honeybadger.ProjectParams {
	var (
		resolveOnDeploy = fs.String("resolve-errors-on-deploy", "", "true or false: resolve all unresolved faults on deploy")
		disableLinks    = fs.String("disable-public-links", "", "true or false: disable public fault links")
		language        = fs.String("language", "", "Project language ("+strings.Join(contract.Languages, ", ")+")")
		userURL         = fs.String("user-url", "", "URL format for user profile links")
		sourceURL       = fs.String("source-url", "", "URL format for source code links")
		purgeDays       = fs.Int("purge-days", 0, "Days to retain error data")
		userSearch      = fs.String("user-search-field", "", "Notice field used to search for affected users")
	)

	return func() honeybadger.ProjectParams {
		params := honeybadger.ProjectParams{
			Language:        *language,
			UserURL:         *userURL,
			SourceURL:       *sourceURL,
			UserSearchField: *userSearch,
		}
		if v := parseBoolFlag(*resolveOnDeploy); v != nil {
			params.ResolveErrorsOnDeploy = v
		}
		if v := parseBoolFlag(*disableLinks); v != nil {
			params.DisablePublicLinks = v
		}
		if *purgeDays > 0 {
			params.PurgeDays = purgeDays
		}
		return params
	}
}

// parseBoolFlag turns the string flag values "true"/"false" into a tri-state
// pointer. Empty means unset; anything else is ignored the same way.
func parseBoolFlag(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// runCreateProject executes the 'create-project' CLI command.
func runCreateProject(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("create-project", flag.ExitOnError)
	accountID := fs.Int("account-id", 0, "Account to create the project in")
	buildParams := projectFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp create-project <name> [options]

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		errors.FatalError(errors.NewInputError(
			"Missing project name",
			"create-project requires the new project's name",
			"Run: hbmcp create-project \"My Project\"",
		), globals.JSON)
	}
	name := fs.Arg(0)

	params := buildParams()
	if params.Language != "" && !contract.ValidLanguage(params.Language) {
		errors.FatalError(errors.NewInputError(
			"Invalid language",
			fmt.Sprintf("language must be one of: %s", strings.Join(contract.Languages, ", ")),
			"Use e.g. --language golang",
		), globals.JSON)
	}

	var account *int
	if *accountID != 0 {
		account = accountID
	}

	_, client := loadConfigAndClient(globals)
	raw, err := client.CreateProject(context.Background(), name, account, params)
	emit(raw, err, globals)
}

// runUpdateProject executes the 'update-project' CLI command. Only supplied
// flags are transmitted.
func runUpdateProject(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("update-project", flag.ExitOnError)
	name := fs.String("name", "", "New project name")
	buildParams := projectFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp update-project <project-id> [options]

Only the supplied fields are changed.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID := requireIntArg(fs, 0, "project ID", globals)
	params := buildParams()
	params.Name = *name

	_, client := loadConfigAndClient(globals)
	raw, err := client.UpdateProject(context.Background(), projectID, params)
	emit(raw, err, globals)
}

// runDeleteProject executes the 'delete-project' CLI command.
func runDeleteProject(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("delete-project", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hbmcp delete-project <project-id> --yes")
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	projectID := requireIntArg(fs, 0, "project ID", globals)
	if !*yes {
		errors.FatalError(errors.NewInputError(
			"Refusing to delete without confirmation",
			fmt.Sprintf("Deleting project %d removes all of its data permanently", projectID),
			fmt.Sprintf("Run: hbmcp delete-project %d --yes", projectID),
		), globals.JSON)
	}

	_, client := loadConfigAndClient(globals)
	raw, err := client.DeleteProject(context.Background(), projectID)
	emit(raw, err, globals)
}

// runProjectOccurrences executes the 'project-occurrences' CLI command. With
// no positional argument it reports the aggregate across all projects.
func runProjectOccurrences(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("project-occurrences", flag.ExitOnError)
	period := fs.String("period", "hour", "Time bucket: "+strings.Join(contract.Periods, ", "))
	environment := fs.String("environment", "", "Filter by environment")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp project-occurrences [project-id] [options]

Without a project ID, reports occurrences across all projects.

Options:
`)
		fs.PrintDefaults()
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

	var projectID *int
	if fs.NArg() > 0 {
		id := requireIntArg(fs, 0, "project ID", globals)
		projectID = &id
	}

	_, client := loadConfigAndClient(globals)
	raw, err := client.ProjectOccurrences(context.Background(), projectID, *period, *environment)
	emit(raw, err, globals)
}

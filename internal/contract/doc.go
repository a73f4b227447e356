// Copyright 2025 KrakLabs
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

// Package contract holds the closed parameter vocabularies of the
// Honeybadger API.
//
// The remote API accepts a handful of enumerated values (occurrence periods,
// fault sort orders, pause windows, project languages). This internal package
// centralizes those vocabularies so the CLI can validate arguments before a
// request is built, giving a clearer message than the remote 422 would:
//
//	if !contract.ValidPeriod(period) {
//	    return errors.NewInputError(
//	        "Invalid period",
//	        fmt.Sprintf("period must be one of: %s", strings.Join(contract.Periods, ", ")),
//	        "Use e.g. --period day",
//	    )
//	}
//
// The MCP tool surface does not pre-validate these; tool schemas describe
// the accepted values and the remote service remains authoritative.
package contract

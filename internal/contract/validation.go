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

package contract

import "slices"

// Enumerated values accepted by the Honeybadger API. The remote service is
// authoritative; these lists exist so the CLI can reject bad input before a
// round trip.
var (
	// Periods are the occurrence-series bucket sizes.
	Periods = []string{"hour", "day", "week", "month"}

	// Orders are the fault listing sort orders.
	Orders = []string{"recent", "frequent"}

	// PauseWindows are the time windows accepted by the pause endpoint.
	PauseWindows = []string{"hour", "day", "week"}

	// PauseCounts are the occurrence counts accepted by the pause endpoint.
	PauseCounts = []int{10, 100, 1000}

	// Languages are the project language identifiers.
	Languages = []string{"js", "elixir", "golang", "java", "node", "php", "python", "ruby", "other"}
)

// ValidPeriod reports whether period is an accepted occurrence bucket size.
func ValidPeriod(period string) bool {
	return slices.Contains(Periods, period)
}

// ValidOrder reports whether order is an accepted fault sort order.
func ValidOrder(order string) bool {
	return slices.Contains(Orders, order)
}

// ValidPauseWindow reports whether window is an accepted pause time window.
func ValidPauseWindow(window string) bool {
	return slices.Contains(PauseWindows, window)
}

// ValidPauseCount reports whether count is an accepted pause occurrence count.
func ValidPauseCount(count int) bool {
	return slices.Contains(PauseCounts, count)
}

// ValidLanguage reports whether lang is an accepted project language.
func ValidLanguage(lang string) bool {
	return slices.Contains(Languages, lang)
}

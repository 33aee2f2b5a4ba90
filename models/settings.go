// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings are the user preferences kept across sessions.
type Settings struct {
	// Theme is the name of the selected TUI theme. Empty means none was
	// chosen yet.
	Theme string `json:"theme"`
}

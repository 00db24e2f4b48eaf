// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

const (
	userPrefix = "users:detail:"
	divePrefix = "dives:detail:"

	// DivesPattern matches every cached dive detail. Dive details embed the
	// submitter's profile, so profile edits drop all of them.
	DivesPattern = divePrefix + "*"
)

// UserKey is the key of a cached user detail response.
func UserKey(id string) string { return userPrefix + id }

// DiveKey is the key of a cached dive detail response.
func DiveKey(id string) string { return divePrefix + id }

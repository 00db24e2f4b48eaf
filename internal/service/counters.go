// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/dive-log/models"

// NextDiveCounters computes the number of a new dive and the owner's
// counters after it. currentCount is the owner's dive count before the
// insert; priorDeepest is nil when no depth has been recorded. A nil prior
// always counts as a new record.
func NextDiveCounters(currentCount int, priorDeepest *float64, maxDepth float64) (models.UserCounters, models.DiveCreateStats) {
	number := currentCount + 1

	deepest := maxDepth
	record := true
	if priorDeepest != nil && *priorDeepest >= maxDepth {
		deepest = *priorDeepest
		record = false
	}

	counters := models.UserCounters{TotalDives: number, DeepestDive: &deepest}
	stats := models.DiveCreateStats{DiveNumber: number, IsNewDepthRecord: record}
	return counters, stats
}

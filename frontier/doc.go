// SPDX-License-Identifier: MIT
//
// Package frontier provides the containers a search driver pulls work from.
//
// What
//
//   - FIFO      – breadth-first: Pop returns the oldest pushed record.
//   - LIFO      – depth-first: Pop returns the most recently pushed record.
//   - Priority  – min-priority over a Key:
//   - ByCost              uniform-cost
//   - ByCostPlusEstimate  A*
//   - ByEstimate          greedy best-first
//
// Lazy deletion
//
//	Every frontier is built with a SkipFunc (usually the driver's visited-set
//	lookup). Pop discards records whose ID is skipped and keeps going until it
//	finds a valid record or the container is empty. Improved routes are pushed
//	as new records; the superseded ones die on pop.
//
// Determinism
//
//	Priority breaks equal keys by insertion sequence, so two runs that push the
//	same records in the same order pop them in the same order.
//
// Complexity
//
//   - FIFO/LIFO Push and Pop: O(1) amortized.
//   - Priority Push and Pop: O(log n), n = stored entries including stale ones.
package frontier

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

// Package lophat computes persistence diagrams from filtered boundary
// matrices over GF(2) using a lock-free, work-stealing parallel column
// reduction. See Decompose for the entry point.
package lophat

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

//go:build !lophat_debug

package lophat

const debugAssertions = false

// checkLowInvariant is a no-op outside of debug builds.
func checkLowInvariant(m *matrixStore) {}

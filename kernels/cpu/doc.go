// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu registers the built-in CPU kernels.
//
// Importing the package populates the global registry, so most
// programs only need the side effect:
//
//	import _ "github.com/flint-ml/flint/kernels/cpu"
//
// The registered kernel names are add, subtract, multiply, divide,
// floor_divide, maximum, minimum, scale, cast, fill, and copy. The
// arithmetic kernels cover the numeric dtypes plus float16 variants
// of add and scale; copy covers every dtype.
package cpu

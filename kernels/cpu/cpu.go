// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/flint-ml/flint/internal/kernels/cpu"
	"github.com/flint-ml/flint/kernel"
)

// RegisterAll registers every built-in CPU kernel into r. The global
// registry is already populated by importing this package; use
// RegisterAll to fill an isolated registry.
func RegisterAll(r *kernel.Registry) error {
	return cpu.RegisterAll(r)
}

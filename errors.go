// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

import "errors"

var (
	// ErrCapacity reports that a payload exceeds the configured maximum for its direction.
	ErrCapacity = errors.New("framebus: payload exceeds configured maximum")

	// ErrTableFull reports that no free slot remains in the target listener table,
	// or that a duplicate key (id or type) was already live and was not evicted.
	ErrTableFull = errors.New("framebus: listener table full")

	// ErrNotFound reports that a removal or renewal referenced a key that is not registered.
	ErrNotFound = errors.New("framebus: listener not found")

	// ErrInvalidArgument reports a bad construction-time configuration.
	ErrInvalidArgument = errors.New("framebus: invalid argument")
)

// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import "errors"

// ErrDecode is returned when bytes cannot be decoded into a signature
// or a signature component. It carries no detail about the input.
var ErrDecode = errors.New("ed448: signature decode error")

// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// String returns the signature bytes as uppercase hexadecimal,
// without prefix or separators.
func (sig Signature) String() string {
	return strings.ToUpper(sig.lowerHex())
}

// GoString returns the debug representation of the signature,
// showing its R and s components.
func (sig Signature) GoString() string {
	return "ed448.Signature{R: " + sig.RBytes().GoString() +
		", s: " + sig.SBytes().GoString() + "}"
}

// Format implements fmt.Formatter.
// %v, %s and %X print the uppercase hexadecimal form,
// %x prints the lowercase hexadecimal form, %q prints the
// uppercase form quoted and %+v or %#v print the debug form.
// For the hexadecimal forms, the precision limits the number of
// characters printed and the width pads them with spaces,
// on the right if the - flag is set.
func (sig Signature) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') || f.Flag('+') {
			_, _ = io.WriteString(f, sig.GoString())
			return
		}
		writePadded(f, sig.String())
	case 's', 'X':
		writePadded(f, sig.String())
	case 'x':
		writePadded(f, sig.lowerHex())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", sig.String())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(ed448.Signature=%s)", verb, sig.String())
	}
}

func (sig Signature) lowerHex() string {
	b := sig.Bytes()
	return hex.EncodeToString(b[:])
}

func writePadded(f fmt.State, s string) {
	if precision, ok := f.Precision(); ok && precision < len(s) {
		s = s[:precision]
	}

	if width, ok := f.Width(); ok && width > len(s) {
		padding := strings.Repeat(" ", width-len(s))
		if f.Flag('-') {
			s += padding
		} else {
			s = padding + s
		}
	}

	_, _ = io.WriteString(f, s)
}

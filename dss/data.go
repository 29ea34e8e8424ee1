// Package dss stores the code to decode the fixed 1024-byte header of
// Digital Speech Standard files, the proprietary container format of
// dictation recorders.
package dss

import (
	"github.com/arkane-systems/arkane-fileproperties-dss/dss/dheader"
)

func IsDSSFile(bs []byte) bool {
	return dheader.IsValidMagic(bs)
}

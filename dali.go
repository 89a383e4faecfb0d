// Package dali implements the command and response encoding layer of the
// IEC 62386 two-wire lighting control bus. Commands are built from typed
// parameters into 16 bit forward frames, received frames are resolved back
// into typed commands, and backward frames are decoded into typed
// responses.
package dali

import "fmt"

var sprintf = fmt.Sprintf

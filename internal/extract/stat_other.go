//go:build !linux

package extract

import (
	"fmt"
	"runtime"
)

func statValues(string) (Values, error) {
	return nil, fmt.Errorf("stat module is not supported on %s", runtime.GOOS)
}

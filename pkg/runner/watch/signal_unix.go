//go:build !windows

package watch

import (
	"os"
	"syscall"
)

func focusSignal() os.Signal {
	return syscall.SIGUSR1
}

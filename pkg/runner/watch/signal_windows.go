package watch

import "os"

func focusSignal() os.Signal {
	return nil
}

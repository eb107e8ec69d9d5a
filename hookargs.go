package platohook

import (
	"fmt"
	"strconv"
)

// HookArgs carries the positional arguments Plato passes when launching a
// fetch hook: the library root, the directory to save fetched documents
// into, and the wifi and online states at launch time.
type HookArgs struct {
	LibraryPath string
	SaveDir     string
	Wifi        WifiState
	Online      bool
}

// ParseHookArgs parses the arguments given to a hook program, excluding the
// program name.
func ParseHookArgs(argv []string) (HookArgs, error) {
	if len(argv) != 4 {
		return HookArgs{}, fmt.Errorf("expected 4 hook arguments (library path, save dir, wifi, online), got %d", len(argv))
	}

	wifi, err := strconv.ParseBool(argv[2])
	if err != nil {
		return HookArgs{}, fmt.Errorf("parse wifi argument %q: %w", argv[2], err)
	}
	online, err := strconv.ParseBool(argv[3])
	if err != nil {
		return HookArgs{}, fmt.Errorf("parse online argument %q: %w", argv[3], err)
	}

	args := HookArgs{
		LibraryPath: argv[0],
		SaveDir:     argv[1],
		Wifi:        WifiDisabled,
		Online:      online,
	}
	if wifi {
		args.Wifi = WifiEnabled
	}
	return args, nil
}

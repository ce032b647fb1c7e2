package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gobeaver/filelike"
	"github.com/gobeaver/filelike/driver/local"
	"github.com/spf13/cobra"
)

// location is a parsed "driver:path" argument
type location struct {
	Driver string
	Path   string
	Stdio  bool
}

func (l location) String() string {
	if l.Stdio {
		return "-"
	}
	return l.Driver + ":" + l.Path
}

// parseLocation splits arg into driver and path. The prefix only counts as
// a driver when one with that name is registered, so "C:\data" and
// "notes:v2.txt" stay plain paths on the default driver.
func parseLocation(arg, defaultDriver string) (location, error) {
	if arg == "-" {
		return location{Stdio: true}, nil
	}
	if arg == "" {
		return location{}, fmt.Errorf("empty location")
	}

	if driver, path, ok := strings.Cut(arg, ":"); ok && slices.Contains(filelike.Drivers(), driver) {
		if path == "" {
			return location{}, fmt.Errorf("location %q has no path", arg)
		}
		return location{Driver: driver, Path: path}, nil
	}
	return location{Driver: defaultDriver, Path: arg}, nil
}

// openLocation opens loc for reading or writing. The returned close
// function never closes the process's standard streams.
func openLocation(cmd *cobra.Command, cfg *filelike.Config, loc location, write bool) (filelike.FileLike, func() error, error) {
	if loc.Stdio {
		if write {
			return stdoutStream(cmd.OutOrStdout()), noClose, nil
		}
		return stdinStream(cmd.InOrStdin()), noClose, nil
	}

	flag := os.O_RDONLY
	if write {
		flag = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}

	drvCfg := *cfg
	drvCfg.Driver = loc.Driver
	f, err := filelike.Open(&drvCfg, loc.Path, flag)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// The real process streams go through the local driver so a redirected
// regular file reports its size.
func stdinStream(in io.Reader) filelike.FileLike {
	if in == io.Reader(os.Stdin) {
		return local.Stdin()
	}
	return filelike.NewReaderStream(in, filelike.SizeUnknown)
}

func stdoutStream(out io.Writer) filelike.FileLike {
	if out == io.Writer(os.Stdout) {
		return local.Stdout()
	}
	return filelike.NewWriterStream(out)
}

func noClose() error { return nil }

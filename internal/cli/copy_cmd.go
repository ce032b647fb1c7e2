package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/gobeaver/filelike"
	"github.com/gobeaver/filelike/driver/memory"
	"github.com/gobeaver/filelike/internal/logger"
	"github.com/spf13/cobra"
)

var errChecksumMismatch = errors.New("checksum mismatch")

type copyOpts struct {
	size     int64
	verify   bool
	progress bool
}

func CopyCommand() *cobra.Command {
	var opts copyOpts

	cmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a stream from one location to another",
		Example: `  filelike copy local:/var/log/app.log memory:scratch
  filelike copy --size 1024 disk.img - | xxd
  cat data.bin | filelike copy - out.bin --verify`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().Int64Var(&opts.size, "size", -1, "Bytes to copy; negative copies the whole source")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Checksum the bytes written and compare with the destination")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "Show a progress bar")

	return cmd
}

func runCopy(cmd *cobra.Command, srcArg, dstArg string, opts copyOpts) error {
	cfg := GetAppConfig(cmd)
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}

	srcLoc, err := parseLocation(srcArg, cfg.Driver)
	if err != nil {
		return err
	}
	dstLoc, err := parseLocation(dstArg, cfg.Driver)
	if err != nil {
		return err
	}

	var extra []filelike.Option
	var progress *transferProgress
	if opts.progress {
		progress = newTransferProgress(srcLoc.String(), cmd.ErrOrStderr())
		defer progress.Stop()
		extra = append(extra, filelike.WithProgress(progress.Func()))
	}

	copier, cfg, err := newCopier(cmd, extra...)
	if err != nil {
		return err
	}

	src, closeSrc, err := openLocation(cmd, cfg, srcLoc, false)
	if err != nil {
		return err
	}
	defer closeSrc()

	dst, closeDst, err := openLocation(cmd, cfg, dstLoc, true)
	if err != nil {
		return err
	}

	start := time.Now()
	var n int64
	var sum string
	algo := checksumAlgorithm(cfg)
	if opts.verify {
		n, sum, err = copier.CopyVerified(src, dst, opts.size, algo)
	} else {
		n, err = copier.SendFile(src, dst, opts.size)
	}
	if cerr := closeDst(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("copy failed", logger.Fields{
			logger.FieldSource: srcLoc.String(),
			logger.FieldDest:   dstLoc.String(),
			logger.FieldBytes:  n,
			logger.FieldError:  err.Error(),
		})
		return err
	}

	logger.Info("copy complete", logger.Fields{
		logger.FieldSource:   srcLoc.String(),
		logger.FieldDest:     dstLoc.String(),
		logger.FieldBytes:    n,
		logger.FieldDuration: time.Since(start).Round(time.Millisecond).String(),
	})

	if opts.verify {
		return verifyCopy(cmd, copier, cfg, dst, dstLoc, algo, sum)
	}
	return nil
}

// verifyCopy re-reads the destination and compares its checksum with the
// checksum of the bytes written. In-memory destinations are checked
// through their snapshot since reopening them yields a fresh stream.
func verifyCopy(cmd *cobra.Command, copier *filelike.Copier, cfg *filelike.Config, dst filelike.FileLike, loc location, algo filelike.ChecksumAlgorithm, want string) error {
	if loc.Stdio {
		logger.Warn("cannot verify standard output, skipping", nil)
		return nil
	}

	var reread filelike.FileLike
	if snap, ok := dst.(filelike.Snapshotter); ok {
		reread = memory.NewFromBytes(snap.Bytes())
	} else {
		f, closeFn, err := openLocation(cmd, cfg, loc, false)
		if err != nil {
			return err
		}
		defer closeFn()
		reread = f
	}

	got, err := copier.Checksum(reread, algo)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: %s of %s is %s, wrote %s", errChecksumMismatch, algo, loc, got, want)
	}

	logger.Info("destination verified", logger.Fields{
		logger.FieldAlgorithm: string(algo),
		logger.FieldChecksum:  got,
	})
	return nil
}

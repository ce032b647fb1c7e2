package cli

import (
	"github.com/gobeaver/filelike/internal/logger"
	"github.com/spf13/cobra"
)

func CatCommand() *cobra.Command {
	var size int64

	cmd := &cobra.Command{
		Use:   "cat SRC",
		Short: "Write a stream to standard output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			copier, cfg, err := newCopier(cmd)
			if err != nil {
				return err
			}

			loc, err := parseLocation(args[0], cfg.Driver)
			if err != nil {
				return err
			}
			src, closeSrc, err := openLocation(cmd, cfg, loc, false)
			if err != nil {
				return err
			}
			defer closeSrc()

			n, err := copier.SendFile(src, stdoutStream(cmd.OutOrStdout()), size)
			logger.Debug("cat finished", logger.Fields{
				logger.FieldSource: loc.String(),
				logger.FieldBytes:  n,
			})
			return err
		},
	}

	cmd.Flags().Int64Var(&size, "size", -1, "Bytes to print; negative prints the whole source")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/gobeaver/filelike"
	"github.com/gobeaver/filelike/driver/local"
	"github.com/gobeaver/filelike/internal/logger"
	"github.com/spf13/cobra"
)

func ChecksumCommand() *cobra.Command {
	var algorithms []string

	cmd := &cobra.Command{
		Use:   "checksum SRC...",
		Short: "Print checksums of one or more streams",
		Long: `Print checksums of one or more streams. Each source is read once, however
many algorithms are requested. Supported: md5, sha1, sha256, sha512, crc32, xxhash.
Local sources may be glob patterns relative to the base path ("logs/*.log", "**.bin").`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			copier, cfg, err := newCopier(cmd)
			if err != nil {
				return err
			}

			algos := make([]filelike.ChecksumAlgorithm, 0, len(algorithms))
			for _, a := range algorithms {
				algos = append(algos, filelike.ChecksumAlgorithm(a))
			}
			if len(algos) == 0 {
				algos = append(algos, checksumAlgorithm(cfg))
			}

			sources, err := expandSources(cfg, args)
			if err != nil {
				return err
			}
			for _, arg := range sources {
				if err := printChecksums(cmd, copier, cfg, arg, algos); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&algorithms, "algorithm", "a", nil, "Checksum algorithm (repeatable); defaults to the configured one")
	return cmd
}

func printChecksums(cmd *cobra.Command, copier *filelike.Copier, cfg *filelike.Config, arg string, algos []filelike.ChecksumAlgorithm) error {
	loc, err := parseLocation(arg, cfg.Driver)
	if err != nil {
		return err
	}
	src, closeSrc, err := openLocation(cmd, cfg, loc, false)
	if err != nil {
		return err
	}
	defer closeSrc()

	sums, err := copier.Checksums(src, algos)
	if err != nil {
		logger.Error("checksum failed", logger.Fields{
			logger.FieldSource: loc.String(),
			logger.FieldError:  err.Error(),
		})
		return err
	}

	for _, algo := range algos {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", sums[algo], algo, arg)
	}
	return nil
}

// expandSources replaces local glob patterns with the files they match
func expandSources(cfg *filelike.Config, args []string) ([]string, error) {
	var sources []string
	for _, arg := range args {
		loc, err := parseLocation(arg, cfg.Driver)
		if err != nil {
			return nil, err
		}
		if loc.Stdio || loc.Driver != "local" || !local.HasMeta(loc.Path) {
			sources = append(sources, arg)
			continue
		}

		matches, err := local.Glob(cfg.LocalBasePath, loc.Path)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", arg)
		}
		for _, m := range matches {
			sources = append(sources, "local:"+m)
		}
	}
	return sources, nil
}

// checksumAlgorithm returns the configured algorithm, or xxhash
func checksumAlgorithm(cfg *filelike.Config) filelike.ChecksumAlgorithm {
	if cfg.ChecksumAlgorithm == "" {
		return filelike.ChecksumXXHash
	}
	return filelike.ChecksumAlgorithm(cfg.ChecksumAlgorithm)
}

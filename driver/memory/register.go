package memory

import "github.com/gobeaver/filelike"

func init() {
	filelike.RegisterDriver("memory", func(cfg *filelike.Config, name string, flag int) (filelike.FileLike, error) {
		return New(), nil
	})
}

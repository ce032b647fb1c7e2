package local

import "github.com/gobeaver/filelike"

func init() {
	filelike.RegisterDriver("local", func(cfg *filelike.Config, name string, flag int) (filelike.FileLike, error) {
		return OpenUnder(cfg.LocalBasePath, name, flag, DefaultPerm)
	})
}

package yamlfile

import (
	"github-relay-bot/internal/registry/repository"
	pkgLog "github-relay-bot/pkg/log"
)

type implRepository struct {
	path string
	l    pkgLog.Logger
}

// New creates a Store that keeps the registry state in a single YAML file at path.
func New(path string, l pkgLog.Logger) repository.Store {
	return &implRepository{
		path: path,
		l:    l,
	}
}

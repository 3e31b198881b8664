package manifest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/publisherr/publisherr/pkg/domain/interfaces"
	"github.com/publisherr/publisherr/pkg/domain/model"
)

// FileName is the manifest file name looked up in the package directory
const FileName = "package.json"

type repository struct {
	path string
}

// New creates a ManifestRepository reading package.json in dir
func New(dir string) interfaces.ManifestRepository {
	return &repository{
		path: filepath.Join(dir, FileName),
	}
}

// Load reads and parses the manifest
func (r *repository) Load(ctx context.Context) (*model.Manifest, error) {
	path, err := filepath.Abs(r.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve manifest path", goerr.V("path", r.path))
	}

	ctxlog.From(ctx).Debug("Reading manifest", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest", goerr.V("path", path))
	}

	var m model.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, goerr.Wrap(err, "failed to parse manifest", goerr.V("path", path))
	}

	if m.Name == "" {
		return nil, goerr.New("manifest has no package name", goerr.V("path", path))
	}

	return &m, nil
}

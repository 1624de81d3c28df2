package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	oerrors "github.com/presidio-build/presidio-configs/internal/errors"
	"github.com/presidio-build/presidio-configs/internal/output"
)

// Write creates dir (with parents) and writes every artifact into it,
// silently replacing existing files. Each file is replaced atomically.
func (s *Set) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.WrapWrite(err, "creating output directory "+dir)
	}

	for _, f := range s.Files {
		if err := writeFile(filepath.Join(dir, f.Name), f); err != nil {
			return err
		}
	}

	return nil
}

// writeFile writes one artifact through a pending file: temp file, fsync,
// then rename over the target.
func writeFile(path string, f File) error {
	log := output.ArtifactLogger(f.Name)

	pending, err := renameio.NewPendingFile(path, renameio.WithStaticPermissions(f.Mode))
	if err != nil {
		return oerrors.WrapWrite(err, fmt.Sprintf("creating pending file for %s", f.Name))
	}
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil {
			log.Debug("cleanup pending file", "error", cerr)
		}
	}()

	if _, err := pending.Write(f.Data); err != nil {
		return oerrors.WrapWrite(err, fmt.Sprintf("writing %s", f.Name))
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return oerrors.WrapWrite(err, fmt.Sprintf("replacing %s", f.Name))
	}

	log.Debug("artifact written", "path", path, "bytes", len(f.Data), "mode", f.Mode)
	return nil
}

package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/logger"
)

// DirSink saves downloads into a directory. Each file is staged in a
// temporary file that never outlives the call.
type DirSink struct {
	Dir string
}

func (s DirSink) Deliver(_ context.Context, d Download) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrap(err, "create downloads dir")
	}

	tmp, err := os.CreateTemp(s.Dir, ".download-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Warn("failed to remove temp download", zap.String("file", tmpName), zap.Error(rmErr))
		}
	}()

	if _, err = tmp.Write(d.Body); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err = os.Rename(tmpName, filepath.Join(s.Dir, filepath.Base(d.Name))); err != nil {
		return errors.Wrap(err, "move download into place")
	}
	return nil
}

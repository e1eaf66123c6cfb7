package datastore

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/keepsake/pkg/errors"
	"github.com/arthur-debert/keepsake/pkg/logging"
	"github.com/arthur-debert/keepsake/pkg/types"
	"github.com/rs/zerolog"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Read loads the entry's file into its value. A missing file is first
// created holding the type's default value. The value is left untouched
// when the file cannot be read or decoded.
func (s Storage) Read(e Entry) (err error) {
	logger := s.entryLogger(e)
	logger.Debug().Msg("Reading store")
	done := logging.StartOperation(logger, "read")
	defer func() { done(err) }()

	return s.withFile(e, logger, errors.ErrFileRead, func(f types.File) error {
		data, err := io.ReadAll(f)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "failed to read from file %s", f.Name()).
				WithDetails(details(e, f.Name()))
		}
		logger.Trace().Int("bytes", len(data)).Msg("Read file contents")

		if err := e.decode(s.codec, data); err != nil {
			return errors.Wrapf(err, errors.ErrDecode, "failed to decode %s as %s", f.Name(), s.codec.Name()).
				WithDetails(details(e, f.Name()))
		}

		logger.Info().Msg("Successfully read store")
		return nil
	})
}

// Write replaces the entry's file contents with its encoded value. A
// missing file is bootstrapped with the default value first, exactly as
// Read does.
func (s Storage) Write(e Entry) (err error) {
	logger := s.entryLogger(e)
	logger.Debug().Msg("Writing store")
	done := logging.StartOperation(logger, "write")
	defer func() { done(err) }()

	return s.withFile(e, logger, errors.ErrFileWrite, func(f types.File) error {
		data, err := e.encode(s.codec)
		if err != nil {
			return errors.Wrapf(err, errors.ErrEncode, "failed to encode %s as %s", e.Identifier(), s.codec.Name()).
				WithDetails(details(e, f.Name()))
		}

		if err := f.Truncate(0); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to truncate %s", f.Name()).
				WithDetails(details(e, f.Name()))
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to rewind %s", f.Name()).
				WithDetails(details(e, f.Name()))
		}
		if _, err := f.Write(data); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write to file %s", f.Name()).
				WithDetails(details(e, f.Name()))
		}

		logger.Info().Int("bytes", len(data)).Msg("Successfully wrote store")
		return nil
	})
}

// withFile opens the entry's file read-write without creating it. On a
// not-found result it writes the default file and opens once more; that
// second attempt is final. closeCode classifies a failing Close.
func (s Storage) withFile(e Entry, logger zerolog.Logger, closeCode errors.ErrorCode, op func(types.File) error) (err error) {
	path, err := s.PathFor(e.Category(), e.Identifier())
	if err != nil {
		return err
	}
	logger.Debug().Str("path", path).Msg("Opening file")

	f, err := s.fs.OpenFile(path, os.O_RDWR, 0)
	if stderrors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("path", path).Msg("File not found, creating default store")
		if err := s.storeDefault(e, path, logger); err != nil {
			return err
		}
		f, err = s.fs.OpenFile(path, os.O_RDWR, 0)
	}
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to open file")
		return errors.Wrapf(err, errors.ErrFileOpen, "failed to open file %s", path).
			WithDetails(details(e, path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, closeCode, "failed to close file %s", path).
				WithDetails(details(e, path))
		}
	}()

	logger.Debug().Str("path", path).Msg("File opened successfully")
	return op(f)
}

// storeDefault writes the default value of the entry's type to path,
// creating parent directories as needed.
func (s Storage) storeDefault(e Entry, path string, logger zerolog.Logger) error {
	logger.Debug().Str("path", path).Msg("Storing default value")

	parent := filepath.Dir(path)
	if err := s.fs.MkdirAll(parent, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", parent).
			WithDetails(details(e, parent))
	}
	logger.Debug().Str("dir", parent).Msg("Ensured directory exists")

	data, err := e.encodeDefault(s.codec)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEncode, "failed to encode default value for %s", e.Identifier()).
			WithDetails(details(e, path))
	}

	if err := s.fs.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write default value to %s", path).
			WithDetails(details(e, path))
	}

	logger.Info().Str("path", path).Msg("Default store written")
	return nil
}

func (s Storage) entryLogger(e Entry) zerolog.Logger {
	return s.log().With().
		Str("identifier", e.Identifier()).
		Stringer("category", e.Category()).
		Logger()
}

func details(e Entry, path string) map[string]interface{} {
	return map[string]interface{}{
		"identifier": e.Identifier(),
		"category":   e.Category().String(),
		"path":       path,
	}
}

// Package file stores each key as a file in a directory, optionally zstd-compressed.
package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// Store writes values atomically via a temp file and rename
type Store struct {
	dir      string
	compress bool
}

// NewStore creates the directory if needed
func NewStore(dir string, compress bool) (*Store, error) {
	if dir == "" {
		return nil, errors.New(ErrMsgEmptyDir)
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateDirFailed, err)
	}
	return &Store{dir: dir, compress: compress}, nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf(ErrMsgInvalidKey, key)
	}
	name := key + ExtJSON
	if s.compress {
		name += ExtZstd
	}
	return filepath.Join(s.dir, name), nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, p, err)
	}
	if !s.compress {
		return raw, nil
	}

	zr, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecompressFailed, p, err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecompressFailed, p, err)
	}
	return out, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	data := value
	if s.compress {
		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return fmt.Errorf(ErrMsgCompressFailed, err)
		}
		if _, err := zw.Write(value); err != nil {
			_ = zw.Close()
			return fmt.Errorf(ErrMsgCompressFailed, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf(ErrMsgCompressFailed, err)
		}
		data = buf.Bytes()
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(p)+TempPattern)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, p, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(ErrMsgWriteFailed, p, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(ErrMsgWriteFailed, p, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, p, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, p, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(ErrMsgRemoveFailed, p, err)
	}
	return nil
}

// Ping checks the directory is still there
func (s *Store) Ping(ctx context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

func (s *Store) Close() error {
	return nil
}

package local_fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type Config struct {
	SavePath string `yaml:"save-path" default:"storage/images"`
}

// LocalFS stores uploads on the local filesystem under SavePath.
// LocalFS 将上传文件保存到本地 SavePath 目录下
type LocalFS struct {
	Config *Config
}

func NewClient(cfg *Config) (*LocalFS, error) {
	if cfg == nil || cfg.SavePath == "" {
		return nil, errors.New("local_fs: save path is required")
	}
	if err := os.MkdirAll(cfg.SavePath, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "local_fs")
	}
	return &LocalFS{Config: cfg}, nil
}

// SendFile writes the uploaded content under its base filename. The
// content type is ignored for local storage.
func (p *LocalFS) SendFile(pathKey string, file io.Reader, cType string) (string, error) {
	dst := filepath.Join(p.Config.SavePath, filepath.Base(pathKey))

	out, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	return dst, nil
}

func (p *LocalFS) Delete(pathKey string) error {
	dst := filepath.Join(p.Config.SavePath, filepath.Base(pathKey))
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "local_fs")
	}
	return nil
}

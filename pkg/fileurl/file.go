package fileurl

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
)

// IsExist determines if the given path exists
// IsExist 判断所给路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// IsDir determines if the given path is a directory
// IsDir 判断所给路径是否为文件夹
func IsDir(path string) bool {
	s, err := os.Stat(path)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// IsFile determines if the given path is a file
// IsFile 判断所给路径是否为文件
func IsFile(path string) bool {
	s, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !s.IsDir()
}

// GetFileExt gets the file extension, dot included
// GetFileExt 获取文件后缀（含点号）
func GetFileExt(name string) string {
	return path.Ext(name)
}

// GetFileBase strips the extension from a file name
// GetFileBase 去除文件名的后缀
func GetFileBase(name string) string {
	return strings.TrimSuffix(name, GetFileExt(name))
}

// IsContainExt determines if a file extension is within the allowed set,
// case insensitive
// IsContainExt 判断文件后缀是否在允许范围内，不区分大小写
func IsContainExt(name string, allowExts []string) bool {
	ext := strings.ToUpper(GetFileExt(name))
	for _, allowExt := range allowExts {
		if strings.ToUpper(allowExt) == ext {
			return true
		}
	}
	return false
}

// CreatePath creates the parent directory of dst
// CreatePath 创建 dst 的父目录
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}

// PathSuffixCheckAdd checks the path suffix, adds it if missing
// PathSuffixCheckAdd 检查路径后缀，如果没有则添加
func PathSuffixCheckAdd(path string, suffix string) string {
	if !strings.HasSuffix(path, suffix) {
		path = path + suffix
	}
	return path
}

// GetExePath gets the directory of the current executable
// GetExePath 获取当前执行文件所在目录
func GetExePath() string {
	file, _ := exec.LookPath(os.Args[0])
	p, _ := filepath.Abs(file)
	index := strings.LastIndex(p, string(os.PathSeparator))
	return p[:index]
}

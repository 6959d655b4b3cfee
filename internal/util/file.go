package util

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SniffMimeType 按文件头识别 MIME 类型，读取后把位置复位到开头
func SniffMimeType(file io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// ValidateImage 只接受 image/ 开头的文件内容，不信任客户端声明的类型
func ValidateImage(file io.ReadSeeker) (string, error) {
	mimeType, err := SniffMimeType(file)
	if err != nil {
		return "", err
	}
	if !IsImage(mimeType) {
		return mimeType, fmt.Errorf("%w: %s", ErrInvalidFileType, mimeType)
	}
	return mimeType, nil
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeImage)
}

package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/logger"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/kurin/blazer/b2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 科目图片等静态资源的存储
type StorageProvider interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	GetURL(objectName string) string
}

// LocalStorageProvider 保存到 storage.local_path，经 /uploads 静态路由访问
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

// resolve 返回对象在 LocalPath 下的文件路径，越出 LocalPath 的对象名返回错误
func (p *LocalStorageProvider) resolve(objectName string) (string, error) {
	root, err := filepath.Abs(p.Config.LocalPath)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(root, filepath.FromSlash(objectName))
	rel, err := filepath.Rel(root, dst)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: object %q escapes storage root", util.ErrInvalidPayload, objectName)
	}
	return dst, nil
}

func (p *LocalStorageProvider) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	dst, err := p.resolve(objectName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return p.GetURL(objectName), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, objectName string) error {
	dst, err := p.resolve(objectName)
	if err != nil {
		return err
	}
	return os.Remove(dst)
}

func (p *LocalStorageProvider) GetURL(objectName string) string {
	return "/uploads/" + objectName
}

type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(objectName), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, objectName string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, objectName, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(objectName string) string {
	return "/" + p.Config.MinioBucket + "/" + objectName
}

// OSSStorageProvider 阿里云 OSS
type OSSStorageProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Config: cfg, Client: client}, nil
}

func (p *OSSStorageProvider) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return "", err
	}
	if err := bucket.PutObject(objectName, reader, oss.ContentType(contentType)); err != nil {
		return "", err
	}
	return p.GetURL(objectName), nil
}

func (p *OSSStorageProvider) Delete(ctx context.Context, objectName string) error {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return err
	}
	return bucket.DeleteObject(objectName)
}

func (p *OSSStorageProvider) GetURL(objectName string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.Config.OSSBucket, p.Config.OSSEndpoint, objectName)
}

// B2StorageProvider Backblaze B2
type B2StorageProvider struct {
	Client *b2.Client
	Bucket *b2.Bucket
}

func NewB2StorageProvider(ctx context.Context, cfg *config.StorageConfig) (*B2StorageProvider, error) {
	client, err := b2.NewClient(ctx, cfg.B2AccountID, cfg.B2ApplicationKey)
	if err != nil {
		return nil, fmt.Errorf("create b2 client: %w", err)
	}
	bucket, err := client.Bucket(ctx, cfg.B2Bucket)
	if err != nil {
		return nil, fmt.Errorf("get b2 bucket: %w", err)
	}
	return &B2StorageProvider{Client: client, Bucket: bucket}, nil
}

func (p *B2StorageProvider) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	w := p.Bucket.Object(objectName).NewWriter(ctx).WithAttrs(&b2.Attrs{ContentType: contentType})
	if _, err := io.Copy(w, reader); err != nil {
		w.Close()
		return "", fmt.Errorf("write b2 object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close b2 object: %w", err)
	}
	return p.GetURL(objectName), nil
}

func (p *B2StorageProvider) Delete(ctx context.Context, objectName string) error {
	return p.Bucket.Object(objectName).Delete(ctx)
}

func (p *B2StorageProvider) GetURL(objectName string) string {
	return p.Bucket.Object(objectName).URL()
}

type StorageService struct {
	Provider StorageProvider
}

// NewStorageService 远程存储初始化失败时退回本地存储
func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Warn("MinIO unavailable, falling back to local storage", zap.Error(err))
		} else {
			provider = p
		}
	case util.StorageOSS:
		p, err := NewOSSStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Warn("OSS unavailable, falling back to local storage", zap.Error(err))
		} else {
			provider = p
		}
	case util.StorageB2:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		p, err := NewB2StorageProvider(ctx, &cfg.Storage)
		cancel()
		if err != nil {
			logger.Log.Warn("B2 unavailable, falling back to local storage", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}
	return &StorageService{Provider: provider}
}

// SubjectImageObject 科目图片的对象名：subjects/<科目ID>/<随机ID><扩展名>
func SubjectImageObject(subjectID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join("subjects", subjectID, model.GenerateUUID()+ext)
}

// UploadSubjectImage 只接受图片类型，返回可访问的 URL
func (s *StorageService) UploadSubjectImage(ctx context.Context, subjectID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if !util.IsImage(contentType) {
		return "", fmt.Errorf("%w: %s", util.ErrInvalidFileType, contentType)
	}
	return s.Provider.Upload(ctx, SubjectImageObject(subjectID, filename), reader, size, contentType)
}

func (s *StorageService) Delete(ctx context.Context, objectName string) error {
	return s.Provider.Delete(ctx, objectName)
}

// SubjectImageObjectName 由 URL 反推对象名；不是本存储上传的科目图片时返回 false
func (s *StorageService) SubjectImageObjectName(url string) (string, bool) {
	prefix := s.Provider.GetURL("")
	if url == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(url, prefix)
	return name, strings.HasPrefix(name, "subjects/")
}

// RemoveSubjectImage 删除科目图片对象，外部链接不处理，失败只记录日志
func (s *StorageService) RemoveSubjectImage(ctx context.Context, url string) {
	name, ok := s.SubjectImageObjectName(url)
	if !ok {
		return
	}
	if err := s.Delete(ctx, name); err != nil {
		logger.Log.Warn("Failed to remove subject image", zap.String("object", name), zap.Error(err))
	}
}

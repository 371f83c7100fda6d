package inapp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// StorageKey 站内信列表持久化时使用的固定 key
const StorageKey = "expense:notifications"

// ErrSnapshotNotFound 尚未持久化过任何数据
var ErrSnapshotNotFound = errors.New("站内信快照不存在")

// Storage 站内信列表的本地持久化，只保存整份列表的 JSON 快照
type Storage interface {
	// Load 读取快照，不存在时返回 ErrSnapshotNotFound
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// FileStorage 把快照保存在本地文件中
type FileStorage struct {
	path string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, StorageKey+".json")}
}

func (f *FileStorage) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSnapshotNotFound
	}
	return data, err
}

// Save 先写临时文件再重命名，避免写到一半留下损坏的快照
func (f *FileStorage) Save(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("创建快照目录失败: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("写入快照失败: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("替换快照失败: %w", err)
	}
	return nil
}

// RedisStorage 多实例部署时把快照放在 redis 中
type RedisStorage struct {
	rdb redis.Cmdable
	key string
}

func NewRedisStorage(rdb redis.Cmdable) *RedisStorage {
	return &RedisStorage{rdb: rdb, key: StorageKey}
}

func (r *RedisStorage) Load(ctx context.Context) ([]byte, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("从redis读取快照失败: %w", err)
	}
	return data, nil
}

func (r *RedisStorage) Save(ctx context.Context, data []byte) error {
	if err := r.rdb.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("写入redis快照失败: %w", err)
	}
	return nil
}

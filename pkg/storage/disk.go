package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type diskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) (ObjectStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &diskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (d *diskStore) Put(name string, data []byte) error {
	path := filepath.Join(d.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (d *diskStore) Delete(name string) error {
	err := os.Remove(filepath.Join(d.root, filepath.FromSlash(name)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *diskStore) URL(name string) string {
	return d.baseURL + "/storage/" + name
}

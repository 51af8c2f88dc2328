package storage_fx

import (
	"go.uber.org/fx"
	"log"
	"os"

	"murmur/pkg/storage"
)

var Module = fx.Provide(provideObjectStore)

func provideObjectStore() storage.ObjectStore {
	root := os.Getenv("STORAGE_DIR")
	if root == "" {
		root = "./storage"
	}

	store, err := storage.NewDiskStore(root, os.Getenv("APP_BASE_URL"))
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}
	return store
}

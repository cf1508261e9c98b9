// Package cache holds the artifact stores: an in-process LRU for a single
// server and a redis store shared between replicas.
package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"resume-renderer/internal/usecase"
)

type MemoryStore struct {
	lru *lru.Cache[string, *usecase.Artifact]
}

var _ usecase.ArtifactStore = (*MemoryStore)(nil)

func NewMemoryStore(size int) (*MemoryStore, error) {
	if size <= 0 {
		size = 32
	}
	c, err := lru.New[string, *usecase.Artifact](size)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{lru: c}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (*usecase.Artifact, bool, error) {
	a, ok := s.lru.Get(key)
	return a, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, a *usecase.Artifact) error {
	s.lru.Add(key, a)
	return nil
}

func (s *MemoryStore) Len() int { return s.lru.Len() }

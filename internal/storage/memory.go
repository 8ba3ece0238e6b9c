package storage

import (
	"errors"
	"sync"
)

// Memory - in-memory реализация Store для тестов и CLI
type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// FailGets/FailSets имитируют недоступность хранилища в тестах
	FailGets bool
	FailSets bool
}

// NewMemory создаёт пустое in-memory хранилище
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

var errUnavailable = errors.New("storage unavailable")

// Get возвращает значение по ключу
func (s *Memory) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailGets {
		return "", false, errUnavailable
	}
	value, ok := s.data[key]
	return value, ok, nil
}

// Set записывает значение по ключу
func (s *Memory) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSets {
		return errUnavailable
	}
	s.data[key] = value
	return nil
}

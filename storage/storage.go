// Package storage is the local key/value store backing preferences,
// watched sets and the access token.
package storage

import (
	"sync"

	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/where"
	"github.com/spf13/viper"
)

// Store holds string values by key. A missing key is reported through ok, not err.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is a Store kept in process memory.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Open returns the application store at where.Storage().
// When auth.keyring is set the secret keys live in the system keyring instead.
func Open(secret ...string) Store {
	file := NewFile(where.Storage())
	if !viper.GetBool(key.AuthKeyring) || len(secret) == 0 {
		return file
	}

	routes := make(map[string]Store, len(secret))
	for _, k := range secret {
		routes[k] = Keyring{Service: constant.Miru}
	}

	return Routed{Fallback: file, Routes: routes}
}

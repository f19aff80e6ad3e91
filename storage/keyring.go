package storage

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// Keyring is a Store backed by the operating system secret service.
// Each key is saved as a separate secret under Service.
type Keyring struct {
	Service string
}

func (k Keyring) Get(key string) (string, bool, error) {
	v, err := keyring.Get(k.Service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return v, true, nil
}

func (k Keyring) Set(key, value string) error {
	return keyring.Set(k.Service, key, value)
}

func (k Keyring) Delete(key string) error {
	err := keyring.Delete(k.Service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

package storage

import (
	"sync"

	"github.com/metafates/gache"
	"github.com/miru-cli/miru/filesystem"
)

// File is a Store persisted as a single JSON object.
// Every write rewrites the whole file.
type File struct {
	mu       sync.Mutex
	internal *gache.Cache[map[string]string]
}

// NewFile opens the store at path. The file is created on first write.
func NewFile(path string) *File {
	return &File{
		internal: gache.New[map[string]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (f *File) load() (map[string]string, error) {
	data, expired, err := f.internal.Get()
	if err != nil {
		return nil, err
	}

	if expired || data == nil {
		return make(map[string]string), nil
	}

	return data, nil
}

func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", false, err
	}

	v, ok := data[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}

	data[key] = value
	return f.internal.Set(data)
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}

	if _, ok := data[key]; !ok {
		return nil
	}

	delete(data, key)
	return f.internal.Set(data)
}

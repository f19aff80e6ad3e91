package storage

// Routed sends the listed keys to dedicated stores and everything else to Fallback.
type Routed struct {
	Fallback Store
	Routes   map[string]Store
}

func (r Routed) pick(key string) Store {
	if s, ok := r.Routes[key]; ok {
		return s
	}
	return r.Fallback
}

func (r Routed) Get(key string) (string, bool, error) {
	return r.pick(key).Get(key)
}

func (r Routed) Set(key, value string) error {
	return r.pick(key).Set(key, value)
}

func (r Routed) Delete(key string) error {
	return r.pick(key).Delete(key)
}

// Package recent ranks the titles opened on the watch screen so anime ids
// can be completed from the shell by id or by name.
package recent

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/miru-cli/miru/filesystem"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Title is a remembered title.
type Title struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Opens int    `json:"opens"`
}

var (
	mu     sync.Mutex
	cacher *gache.Cache[map[string]*Title]
)

// store opens the file on first use. Callers hold mu.
func store() *gache.Cache[map[string]*Title] {
	if cacher == nil {
		cacher = gache.New[map[string]*Title](&gache.Options{
			Path:       where.Recent(),
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return cacher
}

func load() map[string]*Title {
	cached, expired, err := store().Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*Title)
	}
	return cached
}

// Remember records that the title was opened. An empty name keeps the stored one.
func Remember(id, name string) error {
	if !viper.GetBool(key.WatchRememberTitles) {
		return nil
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	titles := load()
	title, ok := titles[id]
	if !ok {
		title = &Title{ID: id}
		titles[id] = title
	}

	title.Opens++
	if name = strings.TrimSpace(name); name != "" {
		title.Name = name
	}

	return store().Set(titles)
}

// Forget drops the title.
func Forget(id string) error {
	mu.Lock()
	defer mu.Unlock()

	titles := load()
	if _, ok := titles[id]; !ok {
		return nil
	}

	delete(titles, id)
	return store().Set(titles)
}

// Match returns the remembered titles whose id or name fuzzily contains q,
// most opened first. An empty q matches everything.
func Match(q string) []Title {
	mu.Lock()
	titles := load()
	mu.Unlock()

	q = sanitize(q)
	matched := lo.FilterMap(lo.Values(titles), func(t *Title, _ int) (Title, bool) {
		if q == "" || strings.HasPrefix(t.ID, q) || fuzzy.MatchNormalizedFold(q, t.Name) {
			return *t, true
		}
		return Title{}, false
	})

	slices.SortFunc(matched, func(a, b Title) int {
		if a.Opens != b.Opens {
			return b.Opens - a.Opens
		}
		return strings.Compare(a.ID, b.ID)
	})

	return matched
}

// Best returns the most opened title matching q.
func Best(q string) mo.Option[Title] {
	matched := Match(q)
	if len(matched) == 0 {
		return mo.None[Title]()
	}
	return mo.Some(matched[0])
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}

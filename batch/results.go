package batch

import (
	"github.com/orcaman/concurrent-map"
	"massnet.org/sha256/shautil"
)

type resultMap struct {
	m cmap.ConcurrentMap
}

func newResultMap() *resultMap {
	return &resultMap{
		m: cmap.New(),
	}
}

func (m *resultMap) Get(name string) (shautil.Hash, bool) {
	v, ok := m.m.Get(name)
	if !ok {
		return shautil.Hash{}, false
	}
	return v.(shautil.Hash), ok
}

func (m *resultMap) Set(name string, sum shautil.Hash) {
	m.m.Set(name, sum)
}

func (m *resultMap) Items() map[string]shautil.Hash {
	mi := m.m.Items()
	ms := make(map[string]shautil.Hash, len(mi))
	for name, sum := range mi {
		ms[name] = sum.(shautil.Hash)
	}
	return ms
}

func (m *resultMap) Count() int {
	return m.m.Count()
}

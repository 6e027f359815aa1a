package session

import (
	"sync"

	"github.com/rusq/wipemydiscord/internal/waipu"
)

// index is the label lookup of the targets, populated once at login.
type index struct {
	mu sync.RWMutex

	// keys keep the order of the targets.
	keys []string
	s    map[string]waipu.Target
}

func newIndex(tt []waipu.Target) *index {
	idx := &index{
		keys: make([]string, 0, len(tt)),
		s:    make(map[string]waipu.Target, len(tt)),
	}
	for _, t := range tt {
		idx.add(t)
	}
	return idx
}

func (idx *index) add(t waipu.Target) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	key := t.Label()
	if _, exists := idx.s[key]; !exists {
		idx.keys = append(idx.keys, key)
	}
	idx.s[key] = t
}

// Resolve returns the target by label or ID.
func (idx *index) Resolve(labelOrID string) (waipu.Target, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if t, ok := idx.s[labelOrID]; ok {
		return t, nil
	}
	return waipu.Resolve(idx.values(), labelOrID)
}

// Targets returns the targets in the original order.
func (idx *index) Targets() []waipu.Target {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.values()
}

func (idx *index) values() []waipu.Target {
	ret := make([]waipu.Target, 0, len(idx.keys))
	for _, k := range idx.keys {
		ret = append(ret, idx.s[k])
	}
	return ret
}

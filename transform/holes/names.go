package holes

import (
	"fmt"
	"strconv"
)

// NameAllocator hands out fresh parameter names for one pass. Names are the
// prefix followed by a counter, skipping every reserved name.
type NameAllocator struct {
	prefix   string
	next     int
	reserved map[string]struct{}
	issued   map[string]struct{}
}

// NewNameAllocator returns an allocator that never issues a name in reserved.
func NewNameAllocator(prefix string, reserved map[string]struct{}) *NameAllocator {
	if reserved == nil {
		reserved = make(map[string]struct{})
	}
	return &NameAllocator{
		prefix:   prefix,
		reserved: reserved,
		issued:   make(map[string]struct{}),
	}
}

// Next returns a name that is neither reserved nor previously issued.
func (a *NameAllocator) Next() string {
	for {
		name := a.prefix + strconv.Itoa(a.next)
		a.next++
		if _, ok := a.reserved[name]; ok {
			continue
		}
		a.claim(name)
		return name
	}
}

func (a *NameAllocator) claim(name string) {
	if _, ok := a.issued[name]; ok {
		panic(fmt.Sprintf("holes: parameter name %q issued twice", name))
	}
	a.issued[name] = struct{}{}
}

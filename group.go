package envgroup

import "os"

// Group is an ordered, immutable registry of the variables declared under
// one grouping identifier. Declare groups at startup and treat them as
// read-only afterward; all methods are safe for concurrent use.
type Group struct {
	name    string
	members []Var
}

// Option configures group construction.
type Option func(*groupConfig)

type groupConfig struct {
	lookup LookupFunc
}

// WithLookup replaces os.LookupEnv as the environment collaborator for every
// variable in the group. Useful for tests and for processes that stage their
// environment somewhere other than os.Environ.
func WithLookup(fn LookupFunc) Option {
	return func(cfg *groupConfig) {
		cfg.lookup = fn
	}
}

// New declares a group. Members keep their declaration order, and each is
// bound to its canonical key immediately. Returns *InvalidIdentifierError if
// the group name or any member tokenizes to zero words.
//
// Key uniqueness across members is a declaration-time responsibility: New
// does not reject collisions (distinct member identifiers can only collide
// through underscore or case games), so declare members with distinct word
// sequences.
func New(name string, members []string, opts ...Option) (*Group, error) {
	cfg := groupConfig{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&cfg)
	}

	vars := make([]Var, 0, len(members))
	for _, member := range members {
		key, err := BuildKey(name, member)
		if err != nil {
			return nil, err
		}
		vars = append(vars, Var{
			group:  name,
			member: member,
			key:    key,
			lookup: cfg.lookup,
		})
	}

	return &Group{name: name, members: vars}, nil
}

// MustNew is New, panicking on invalid identifiers. Intended for package-level
// group declarations.
func MustNew(name string, members []string, opts ...Option) *Group {
	g, err := New(name, members, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Name returns the group's identifier as declared (suffix included).
func (g *Group) Name() string { return g.name }

// Members returns the declared variables in declaration order. The slice is
// a fresh copy on every call, so it can be iterated and reiterated freely.
func (g *Group) Members() []Var {
	out := make([]Var, len(g.members))
	copy(out, g.members)
	return out
}

// FindByKey returns the first member whose canonical key equals key.
func (g *Group) FindByKey(key string) (Var, bool) {
	for _, v := range g.members {
		if v.key == key {
			return v, true
		}
	}
	return Var{}, false
}

// KeyExists reports whether any member's canonical key equals key.
func (g *Group) KeyExists(key string) bool {
	_, ok := g.FindByKey(key)
	return ok
}

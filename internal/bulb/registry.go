package bulb

import (
	"fmt"
	"sort"
)

// Registry resolves user-facing aliases to bulb identities.
type Registry struct {
	// aliases maps alias names to bulb identities.
	aliases map[string]ID
}

// NewRegistry validates the alias table and builds a registry over a copy of it.
func NewRegistry(aliases map[string]ID) (*Registry, error) {
	r := &Registry{
		aliases: make(map[string]ID, len(aliases)),
	}

	for alias, id := range aliases {
		if alias == "" {
			return nil, fmt.Errorf("empty alias for bulb %s", id)
		}

		remote, ok := LookupRemote(id.RemoteType)
		if !ok {
			return nil, fmt.Errorf("alias %q: %w: %s", alias, ErrUnknownRemote, id.RemoteType)
		}

		if id.GroupID > remote.NumGroups {
			return nil, fmt.Errorf("alias %q: group %d out of range for %s", alias, id.GroupID, remote.Name)
		}

		id.RemoteType = remote.Name
		r.aliases[alias] = id
	}

	return r, nil
}

// Resolve returns the bulb identity registered under alias.
func (r *Registry) Resolve(alias string) (ID, bool) {
	if r == nil {
		return ID{}, false
	}

	id, ok := r.aliases[alias]

	return id, ok
}

// Aliases returns the registered aliases in lexical order.
func (r *Registry) Aliases() []string {
	result := make([]string, 0, len(r.aliases))
	for alias := range r.aliases {
		result = append(result, alias)
	}

	sort.Strings(result)

	return result
}

package pricing

import (
	"sort"
	"strings"
)

// Catalog maps canonical model keys to pricing records, with an alias table
// resolved before lookup. It is immutable after construction, so lookups
// need no locking; build a new Catalog to change rates.
type Catalog struct {
	records map[string]Record
	aliases map[string]string
}

// NewCatalog builds a catalog from explicit records and aliases.
// Aliases pointing at a key missing from records are kept but resolve to
// not-found, matching the silent fall-through the lookup contract requires.
func NewCatalog(records map[string]Record, aliases map[string]string) *Catalog {
	rs := make(map[string]Record, len(records))
	for k, r := range records {
		rs[strings.ToLower(k)] = r
	}
	as := make(map[string]string, len(aliases))
	for k, v := range aliases {
		as[strings.ToLower(k)] = strings.ToLower(v)
	}
	return &Catalog{records: rs, aliases: as}
}

// NewDefault returns a catalog holding only the built-in rate table.
func NewDefault() *Catalog {
	return NewCatalog(defaultRecords, defaultAliases)
}

// Resolve looks up a model key, trying the canonical map first and the
// alias table second. The key is lowercased before lookup. Returns the
// canonical key the record lives under.
func (c *Catalog) Resolve(key string) (canonical string, rec Record, ok bool) {
	k := strings.ToLower(key)
	if rec, ok = c.records[k]; ok {
		return k, rec, true
	}
	if target, found := c.aliases[k]; found {
		if rec, ok = c.records[target]; ok {
			return target, rec, true
		}
	}
	return "", Record{}, false
}

// Keys returns all canonical keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.records))
	for k := range c.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns all records ordered by canonical key.
func (c *Catalog) List() []Record {
	keys := c.Keys()
	recs := make([]Record, 0, len(keys))
	for _, k := range keys {
		recs = append(recs, c.records[k])
	}
	return recs
}

// Len returns the number of canonical records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Overlay returns a new catalog with updates merged over the receiver's
// records. Updates win on key conflicts; the alias table is carried over
// unchanged. The receiver is not modified.
func (c *Catalog) Overlay(updates map[string]Record) *Catalog {
	merged := make(map[string]Record, len(c.records)+len(updates))
	for k, r := range c.records {
		merged[k] = r
	}
	for k, r := range updates {
		merged[strings.ToLower(k)] = r
	}
	return &Catalog{records: merged, aliases: c.aliases}
}

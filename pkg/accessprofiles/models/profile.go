package models

import (
	"bytes"
	"encoding/json"
)

// Entry is one operator/value pair stored for a heading.
type Entry struct {
	Operator string
	Value    string
}

// MarshalJSON encodes the entry as a 2-element ["operator", "value"] array.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Operator, e.Value})
}

// ProfileSet accumulates decoded entries keyed by profile, filter, category
// and heading. Keys at every level keep first-seen order, so repeated runs
// over the same input serialize identically. Inserting the same key path
// twice keeps the later operator/value.
type ProfileSet struct {
	profiles orderedMap[*profileData]
}

type profileData struct {
	filters orderedMap[*filterData]
}

type filterData struct {
	categories orderedMap[*categoryData]
}

type categoryData struct {
	headings orderedMap[Entry]
}

// NewProfileSet returns an empty store.
func NewProfileSet() *ProfileSet {
	return &ProfileSet{}
}

// Insert stores one entry under profile/filter/category/heading, creating
// intermediate levels as needed. A second insert on the same key path
// overwrites the previous entry.
func (s *ProfileSet) Insert(profile, filter, category, heading, operator, value string) {
	p, ok := s.profiles.get(profile)
	if !ok {
		p = &profileData{}
		s.profiles.put(profile, p)
	}
	f, ok := p.filters.get(filter)
	if !ok {
		f = &filterData{}
		p.filters.put(filter, f)
	}
	c, ok := f.categories.get(category)
	if !ok {
		c = &categoryData{}
		f.categories.put(category, c)
	}
	c.headings.put(heading, Entry{Operator: operator, Value: value})
}

// Lookup returns the entry stored at the given key path.
func (s *ProfileSet) Lookup(profile, filter, category, heading string) (Entry, bool) {
	p, ok := s.profiles.get(profile)
	if !ok {
		return Entry{}, false
	}
	f, ok := p.filters.get(filter)
	if !ok {
		return Entry{}, false
	}
	c, ok := f.categories.get(category)
	if !ok {
		return Entry{}, false
	}
	return c.headings.get(heading)
}

// Profiles returns the profile names in first-seen order.
func (s *ProfileSet) Profiles() []string {
	out := make([]string, len(s.profiles.keys))
	copy(out, s.profiles.keys)
	return out
}

// NumProfiles returns the number of distinct profile names.
func (s *ProfileSet) NumProfiles() int {
	return len(s.profiles.keys)
}

// NumFilters returns the total number of (profile, filter) pairs.
func (s *ProfileSet) NumFilters() int {
	n := 0
	for _, p := range s.profiles.vals {
		n += len(p.filters.keys)
	}
	return n
}

// Records flattens the store into one Record per stored entry, walking every
// level in first-seen order.
func (s *ProfileSet) Records() []Record {
	var recs []Record
	for _, profile := range s.profiles.keys {
		p := s.profiles.vals[profile]
		for _, filter := range p.filters.keys {
			f := p.filters.vals[filter]
			for _, category := range f.categories.keys {
				c := f.categories.vals[category]
				for _, heading := range c.headings.keys {
					e := c.headings.vals[heading]
					recs = append(recs, Record{
						Profile:  profile,
						Filter:   filter,
						Category: category,
						Heading:  heading,
						Operator: e.Operator,
						Value:    e.Value,
					})
				}
			}
		}
	}
	return recs
}

// MarshalJSON encodes the store as a tree of JSON objects
// (profile -> filter -> category -> heading -> [operator, value]) with keys
// in first-seen order.
func (s *ProfileSet) MarshalJSON() ([]byte, error) {
	return marshalOrdered(&s.profiles)
}

func (p *profileData) MarshalJSON() ([]byte, error) {
	return marshalOrdered(&p.filters)
}

func (f *filterData) MarshalJSON() ([]byte, error) {
	return marshalOrdered(&f.categories)
}

func (c *categoryData) MarshalJSON() ([]byte, error) {
	return marshalOrdered(&c.headings)
}

// orderedMap is a string-keyed map that remembers insertion order.
type orderedMap[V any] struct {
	keys []string
	vals map[string]V
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

func (m *orderedMap[V]) put(key string, v V) {
	if m.vals == nil {
		m.vals = make(map[string]V)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// marshalOrdered writes a JSON object with keys in insertion order. The
// stdlib encoder sorts map keys, which would break run-to-run diffability.
func marshalOrdered[V any](m *orderedMap[V]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.vals[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package urlparts

import (
	"net/url"
	"strings"
)

// Query is an ordered multi-map of query parameters. Keys keep the order of
// their first appearance and values keep their input order within a key.
//
// Keys are stored exactly as written. Values are stored unescaped and are
// escaped again by Encode.
type Query struct {
	keys   []string
	values map[string][]param
}

// param is one value of a key. bare marks a component written without '=',
// such as the "foo" in "?foo&a=1", which Encode writes back the same way.
type param struct {
	value string
	bare  bool
}

func NewQuery() *Query {
	return &Query{values: make(map[string][]param)}
}

// ParseQuery splits raw on '&' and each component on its first '='.
// Empty components are skipped; a component without '=' is a bare key.
func ParseQuery(raw string) *Query {
	q := NewQuery()
	for _, component := range strings.Split(raw, "&") {
		if component == "" {
			continue
		}
		key, value, hasEq := strings.Cut(component, "=")
		if !hasEq {
			q.add(key, param{bare: true})
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		q.Add(key, value)
	}
	return q
}

func (q *Query) Add(key, value string) {
	q.add(key, param{value: value})
}

func (q *Query) add(key string, p param) {
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = append(q.values[key], p)
}

// Get returns the decoded values of key. A bare key has one empty value.
func (q *Query) Get(key string) []string {
	params := q.values[key]
	if params == nil {
		return nil
	}
	values := make([]string, len(params))
	for i, p := range params {
		values[i] = p.value
	}
	return values
}

func (q *Query) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

func (q *Query) Keys() []string {
	return append([]string(nil), q.keys...)
}

func (q *Query) Len() int {
	return len(q.keys)
}

// Remove deletes every value of key and reports whether anything was removed.
func (q *Query) Remove(key string) bool {
	return q.RemoveFunc(func(k string) bool { return k == key }) > 0
}

// RemoveFunc deletes every key for which drop returns true and returns the
// number of keys removed.
func (q *Query) RemoveFunc(drop func(key string) bool) int {
	kept := q.keys[:0]
	removed := 0
	for _, k := range q.keys {
		if drop(k) {
			delete(q.values, k)
			removed++
			continue
		}
		kept = append(kept, k)
	}
	q.keys = kept
	return removed
}

// Encode serializes the parameters as key=value pairs joined by '&', and
// bare keys as just the key. It returns nil when there is nothing to encode,
// so the caller drops the '?'.
func (q *Query) Encode() *string {
	var pairs []string
	for _, k := range q.keys {
		for _, p := range q.values[k] {
			if p.bare {
				pairs = append(pairs, k)
				continue
			}
			pairs = append(pairs, k+"="+EncodeValue(p.value))
		}
	}
	if len(pairs) == 0 {
		return nil
	}
	encoded := strings.Join(pairs, "&")
	return &encoded
}

const upperhex = "0123456789ABCDEF"

var digitUnescaper = strings.NewReplacer(
	"%30", "0", "%31", "1", "%32", "2", "%33", "3", "%34", "4",
	"%35", "5", "%36", "6", "%37", "7", "%38", "8", "%39", "9",
)

// EncodeValue percent-encodes every byte outside ALPHA and "-._~", then puts
// ASCII digits back as literals.
func EncodeValue(v string) string {
	return digitUnescaper.Replace(escapeAll(v))
}

func escapeAll(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

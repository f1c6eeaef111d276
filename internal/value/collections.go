package value

import (
	"sort"
	"strconv"
	"strings"
	"unsafe"

	"github.com/funvibe/refinedtype/internal/config"
)

// Array is an ordered sequence.
type Array struct {
	Elements []Value
}

// NewArray copies elements, reading nil as undefined.
func NewArray(elements ...Value) *Array {
	out := make([]Value, len(elements))
	for i, el := range elements {
		out[i] = orUndefined(el)
	}
	return &Array{Elements: out}
}

func (a *Array) Kind() Kind         { return ARRAY_VAL }
func (a *Array) NativeType() string { return config.NativeObject }
func (a *Array) Hash() uint32       { return hashIdentity(unsafe.Pointer(a)) }
func (a *Array) Len() int           { return len(a.Elements) }

func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Field is one key/value pair of an Object.
type Field struct {
	Key   string
	Value Value
}

// Object is a plain record. Fields are kept sorted by key.
type Object struct {
	Fields []Field
}

func NewObject(fields map[string]Value) *Object {
	out := make([]Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, Field{Key: k, Value: orUndefined(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return &Object{Fields: out}
}

func (o *Object) Kind() Kind         { return OBJECT_VAL }
func (o *Object) NativeType() string { return config.NativeObject }
func (o *Object) Hash() uint32       { return hashIdentity(unsafe.Pointer(o)) }

// Get looks a key up by binary search.
func (o *Object) Get(key string) (Value, bool) {
	i := sort.Search(len(o.Fields), func(i int) bool { return o.Fields[i].Key >= key })
	if i < len(o.Fields) && o.Fields[i].Key == key {
		return o.Fields[i].Value, true
	}
	return nil, false
}

func (o *Object) Inspect() string {
	if len(o.Fields) == 0 {
		return "{}"
	}
	parts := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		parts[i] = f.Key + ": " + f.Value.Inspect()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Map is an associative container keyed by arbitrary values.
type Map struct {
	entries *PersistentMap
}

func NewMap(entries ...Entry) *Map {
	m := &Map{entries: EmptyMap()}
	for _, e := range entries {
		m = m.Set(e.Key, e.Value)
	}
	return m
}

func (m *Map) Kind() Kind         { return MAP_VAL }
func (m *Map) NativeType() string { return config.NativeObject }
func (m *Map) Hash() uint32       { return hashIdentity(unsafe.Pointer(m)) }
func (m *Map) Len() int           { return m.entries.Len() }

func (m *Map) Get(key Value) (Value, bool) { return m.entries.Get(key) }
func (m *Map) Entries() []Entry           { return m.entries.Entries() }

// Set returns a new map with key bound to val.
func (m *Map) Set(key, val Value) *Map {
	return &Map{entries: m.entries.Put(key, val)}
}

func (m *Map) Inspect() string {
	entries := m.entries.Entries()
	var sb strings.Builder
	sb.WriteString("Map(")
	sb.WriteString(strconv.Itoa(m.Len()))
	sb.WriteString(") {")
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(" ")
		sb.WriteString(e.Key.Inspect())
		sb.WriteString(" => ")
		sb.WriteString(e.Value.Inspect())
	}
	if len(entries) > 0 {
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

// Set is a container of distinct values.
type Set struct {
	members *PersistentMap
}

func NewSet(members ...Value) *Set {
	s := &Set{members: EmptyMap()}
	for _, m := range members {
		s = s.Add(m)
	}
	return s
}

func (s *Set) Kind() Kind         { return SET_VAL }
func (s *Set) NativeType() string { return config.NativeObject }
func (s *Set) Hash() uint32       { return hashIdentity(unsafe.Pointer(s)) }
func (s *Set) Len() int           { return s.members.Len() }
func (s *Set) Has(v Value) bool   { return s.members.Contains(v) }
func (s *Set) Values() []Value    { return s.members.Keys() }

// Add returns a new set including v.
func (s *Set) Add(v Value) *Set {
	v = orUndefined(v)
	return &Set{members: s.members.Put(v, v)}
}

func (s *Set) Inspect() string {
	values := s.members.Keys()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Inspect()
	}
	if len(parts) == 0 {
		return "Set(0) {}"
	}
	return "Set(" + strconv.Itoa(s.Len()) + ") { " + strings.Join(parts, ", ") + " }"
}

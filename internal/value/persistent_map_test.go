package value

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collidingKey hashes every instance to the same bucket.
type collidingKey struct{ n int }

func (c *collidingKey) Kind() Kind         { return "COLLIDING" }
func (c *collidingKey) NativeType() string { return "object" }
func (c *collidingKey) Inspect() string    { return "k" + strconv.Itoa(c.n) }
func (c *collidingKey) Hash() uint32       { return 7 }

func TestPersistentMapPutGet(t *testing.T) {
	m := EmptyMap()
	m1 := m.Put(NewString("a"), NewNumber(1))
	m2 := m1.Put(NewString("b"), NewNumber(2))

	assert.Equal(t, 0, m.Len(), "original map is unchanged")
	assert.Equal(t, 1, m1.Len())
	assert.Equal(t, 2, m2.Len())

	v, ok := m2.Get(NewString("a"))
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*Number).Value)

	m3 := m2.Put(NewString("a"), NewNumber(10))
	v, _ = m2.Get(NewString("a"))
	assert.Equal(t, 1.0, v.(*Number).Value, "rebinding copies")
	v, _ = m3.Get(NewString("a"))
	assert.Equal(t, 10.0, v.(*Number).Value)
	assert.Equal(t, 2, m3.Len())

	assert.False(t, m3.Contains(NewString("missing")))
}

func TestPersistentMapInsertionOrder(t *testing.T) {
	m := EmptyMap()
	for _, k := range []string{"z", "a", "m"} {
		m = m.Put(NewString(k), NewString(k))
	}
	// rebinding keeps the original slot
	m = m.Put(NewString("z"), NewNumber(26))

	var keys []string
	for _, e := range m.Entries() {
		keys = append(keys, e.Key.(*String).Value)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
	assert.Equal(t, 3, m.Len())
}

func TestPersistentMapSameValueZeroKeys(t *testing.T) {
	m := EmptyMap().
		Put(NewNumber(math.NaN()), NewString("nan")).
		Put(NewNumber(math.Copysign(0, -1)), NewString("zero"))

	v, ok := m.Get(NewNumber(math.NaN()))
	require.True(t, ok)
	assert.Equal(t, "nan", v.(*String).Value)

	v, ok = m.Get(NewNumber(0))
	require.True(t, ok)
	assert.Equal(t, "zero", v.(*String).Value)

	_, ok = m.Get(NewString("0"))
	assert.False(t, ok)
}

func TestPersistentMapManyKeys(t *testing.T) {
	m := EmptyMap()
	for i := 0; i < 2000; i++ {
		m = m.Put(NewNumber(float64(i)), NewNumber(float64(i*i)))
	}
	require.Equal(t, 2000, m.Len())
	for i := 0; i < 2000; i += 37 {
		v, ok := m.Get(NewNumber(float64(i)))
		require.True(t, ok, "key %d", i)
		assert.Equal(t, float64(i*i), v.(*Number).Value)
	}
	assert.False(t, m.Contains(NewNumber(2000)))
	assert.Len(t, m.Keys(), 2000)
}

func TestPersistentMapCollisions(t *testing.T) {
	a, b, c := &collidingKey{1}, &collidingKey{2}, &collidingKey{3}
	m := EmptyMap().Put(a, NewNumber(1)).Put(b, NewNumber(2)).Put(c, NewNumber(3))
	require.Equal(t, 3, m.Len())

	for i, k := range []Value{a, b, c} {
		v, ok := m.Get(k)
		require.True(t, ok)
		assert.Equal(t, float64(i+1), v.(*Number).Value)
	}
	assert.False(t, m.Contains(&collidingKey{1}), "identity keys")

	m = m.Put(b, NewNumber(20))
	assert.Equal(t, 3, m.Len())
	v, _ := m.Get(b)
	assert.Equal(t, 20.0, v.(*Number).Value)
	assert.Equal(t, []Value{a, b, c}, m.Keys())
}

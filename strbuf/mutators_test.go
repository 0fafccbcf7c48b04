package strbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_Idempotent(t *testing.T) {
	s := New()
	payload := []byte("same twice")

	s.Assign(payload)
	first := s.String()
	firstLen := s.Len()

	s.Assign(payload)
	assert.Equal(t, first, s.String(), "second assign must observe identically")
	assert.Equal(t, firstLen, s.Len())
}

func TestAssign_ReplacesDirtyContent(t *testing.T) {
	s := NewString("old content here")
	raw := s.Bytes()
	raw[3] = 0 // leave the header dirty

	s.Assign([]byte("new"))
	assert.Equal(t, "new", s.String())
	assert.Equal(t, 3, s.Len())
}

func TestSet(t *testing.T) {
	src := NewString("source")
	dst := NewString("a much longer destination value")

	dst.Set(src)
	assert.Equal(t, "source", dst.String())
	require.True(t, dst.Equal(src))

	// Copies are wholesale: mutating the source afterwards changes nothing.
	src.AppendByte('!')
	assert.Equal(t, "source", dst.String())
}

func TestSet_NilResets(t *testing.T) {
	s := NewString("about to vanish, with plenty of room")
	require.Greater(t, s.Capacity(), minAlloc)

	s.Set(nil)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, minAlloc, s.Capacity(), "nil assignment reallocates to the default-empty state")
}

func TestSetString_ReusesAllocation(t *testing.T) {
	s := NewString("a fairly long starting value")
	before := s.Capacity()

	s.SetString("short")
	assert.Equal(t, "short", s.String())
	assert.Equal(t, before, s.Capacity(), "shrinking content must not shrink capacity")
}

func TestAppend(t *testing.T) {
	s := NewString("left")
	o := NewString("right")

	s.Append(o)
	assert.Equal(t, "leftright", s.String())

	// Empty receiver takes the plain copy-in path.
	e := New()
	e.Append(o)
	assert.Equal(t, "right", e.String())

	// Appending an empty or nil value is a no-op.
	s.Append(New())
	s.Append(nil)
	assert.Equal(t, "leftright", s.String())
}

func TestAppend_Self(t *testing.T) {
	s := NewString("ab")
	s.Append(s)
	assert.Equal(t, "abab", s.String())
}

func TestAppendString(t *testing.T) {
	s := New()
	s.AppendString("one")
	s.AppendString("")
	s.AppendString("two")

	assert.Equal(t, "onetwo", s.String())
	assert.Equal(t, 6, s.Len())
}

func TestAppendByte(t *testing.T) {
	s := New()
	s.AppendByte('x')
	s.AppendByte(0) // guarded no-op: would corrupt the terminator
	s.AppendByte('y')

	assert.Equal(t, "xy", s.String())
}

func TestAppendString_AfterDirty(t *testing.T) {
	s := NewString("abcdef")
	raw := s.Bytes()
	raw[3] = 0 // content is now "abc", header dirty

	s.AppendString("XY")
	assert.Equal(t, "abcXY", s.String(), "append must resolve the dirty length first")
}

func TestAppendStrInt(t *testing.T) {
	s := New()
	s.AppendStrInt("count=", 42)
	s.AppendStrInt(", neg=", -7)
	assert.Equal(t, "count=42, neg=-7", s.String())
}

func TestAppendStrDouble(t *testing.T) {
	s := New()
	s.AppendStrDouble("x=", 0.5)
	assert.Equal(t, "x=0.5", s.String())

	s2 := New()
	s2.AppendStrDouble("pi=", 3.14159265358979)
	assert.Equal(t, "pi=3.1415927", s2.String(), "doubles use 8 significant digits")
}

func TestTruncateAt_Shorten(t *testing.T) {
	s := NewString("abcdef")

	for k := s.Len(); k >= 0; k-- {
		c := NewString("abcdef")
		c.TruncateAt(k)
		assert.Equal(t, k, c.Len(), "TruncateAt(%d)", k)
		assert.Equal(t, "abcdef"[:k], c.String(), "TruncateAt(%d)", k)
	}
}

func TestTruncateAt_PastEnd(t *testing.T) {
	s := NewString("ab")
	s.TruncateAt(10)

	// Bytes between the old and new terminator are unspecified, but the
	// length and terminator placement must hold.
	assert.Equal(t, 10, s.Len())
	assert.GreaterOrEqual(t, s.Capacity(), 11)
}

func TestTruncateAt_NegativePanics(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.TruncateAt(-1) })
}

func TestEqual(t *testing.T) {
	a := NewString("same")
	b := NewString("same")
	c := NewString("other")
	d := NewString("sam")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d), "length short-circuit")

	assert.True(t, a.EqualString("same"))
	assert.False(t, a.EqualString("sameX"))
	assert.False(t, a.EqualString(""))
}

func TestEqual_ResolvesDirty(t *testing.T) {
	a := NewString("hello")
	raw := a.Bytes()
	raw[2] = 0

	assert.True(t, a.Equal(NewString("he")), "equality must recompute a dirty length")
}

func TestEnsure_PreservesContent(t *testing.T) {
	s := NewString("keep me")
	s.Ensure(500)

	assert.Equal(t, "keep me", s.String())
	assert.GreaterOrEqual(t, s.Capacity(), 500)
}

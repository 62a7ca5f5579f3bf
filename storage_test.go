package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests reach into the container's storage directly to verify the
// release discipline: leaving the populated state must zero the storage so no
// references owned by the old value are retained, and assign-through must
// reuse the storage without zeroing it.

func TestResetReleasesStorage(t *testing.T) {
	value := 42

	o := New(&value)

	require.Same(t, &value, o.value)

	o.Reset()

	assert.False(t, o.present)
	assert.Nil(t, o.value)
}

func TestAssignFromEmptyReleasesStorage(t *testing.T) {
	o := New([]byte("held"))

	o.Assign(None[[]byte]())

	assert.False(t, o.present)
	assert.Nil(t, o.value)
}

func TestSetAssignsThroughStorage(t *testing.T) {
	o := New(1)

	storage := &o.value

	o.Set(2)

	assert.Same(t, storage, &o.value)
	assert.Equal(t, 2, o.value)
	assert.True(t, o.present)
}

func TestAssignPopulatedAssignsThroughStorage(t *testing.T) {
	o := New(1)

	storage := &o.value

	o.Assign(New(2))

	assert.Same(t, storage, &o.value)
	assert.Equal(t, 2, o.value)
	assert.True(t, o.present)
}

func TestRefAliasesStorage(t *testing.T) {
	o := New(1)

	assert.Same(t, &o.value, o.Ref())

	ref, err := o.ValueRef()
	require.NoError(t, err)

	assert.Same(t, &o.value, ref)
}

func TestEmptyStorageIsZero(t *testing.T) {
	var o Optional[*int]

	assert.Nil(t, o.value)

	o.Set(new(int))
	o.Reset()

	assert.Nil(t, o.value)
}

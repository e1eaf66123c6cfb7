package datastore

import (
	"testing"

	"github.com/arthur-debert/keepsake/pkg/codec"
	"github.com/arthur-debert/keepsake/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	Text string `toml:"text"`
}

func (note) Category() types.Category { return types.Data }

type tuned struct {
	Level int `toml:"level"`
}

func (tuned) Category() types.Category { return types.Config }

func (t *tuned) SetDefaults() { t.Level = 3 }

func TestDefault(t *testing.T) {
	assert.Equal(t, note{}, Default[note]())
	assert.Equal(t, tuned{Level: 3}, Default[tuned]())
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, types.Data, CategoryOf[note]())
	assert.Equal(t, types.Config, CategoryOf[tuned]())
}

func TestHandleAccessors(t *testing.T) {
	h := NewHandle[tuned]("tuning")

	assert.Equal(t, "tuning", h.Identifier())
	assert.Equal(t, types.Config, h.Category())
	assert.Equal(t, tuned{Level: 3}, h.Get())

	h.GetMut().Level = 9
	assert.Equal(t, 9, h.Get().Level)

	copied := h.Get()
	copied.Level = 1
	assert.Equal(t, 9, h.Get().Level, "Get returns a copy")

	assert.Equal(t, "config/tuning: {Level:9}", h.String())
}

func TestHandleDecode(t *testing.T) {
	h := NewHandle[tuned]("tuning")

	require.NoError(t, h.decode(codec.TOML(), []byte("level = 5\n")))
	assert.Equal(t, 5, h.Get().Level)

	assert.Error(t, h.decode(codec.TOML(), []byte("level = 'high'\n")))
	assert.Equal(t, 5, h.Get().Level, "failed decode leaves the value")

	require.NoError(t, h.decode(codec.TOML(), []byte("")))
	assert.Equal(t, 0, h.Get().Level, "the file alone determines the value")
}

func TestHandleEncode(t *testing.T) {
	h := NewHandle[tuned]("tuning")
	h.GetMut().Level = 7

	data, err := h.encode(codec.TOML())
	require.NoError(t, err)
	assert.Equal(t, "level = 7\n", string(data))

	data, err = h.encodeDefault(codec.TOML())
	require.NoError(t, err)
	assert.Equal(t, "level = 3\n", string(data))
}

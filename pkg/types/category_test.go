package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "cache", Cache.String())
	assert.Equal(t, "data", Data.String())
	assert.Equal(t, "config", Config.String())
	assert.Equal(t, "category(0)", CategoryUnknown.String())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"cache", Cache, false},
		{"Data", Data, false},
		{" CONFIG ", Config, false},
		{"state", CategoryUnknown, true},
		{"", CategoryUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c.String())
	}
	assert.False(t, CategoryUnknown.Valid())
	assert.False(t, Category(42).Valid())
}

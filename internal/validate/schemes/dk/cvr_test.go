package dk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idnum/internal/validate"
)

func TestCVRCompact(t *testing.T) {
	v := CVR{}

	c, err := v.Compact("DK 25 31 37 63")
	require.NoError(t, err)
	assert.Equal(t, "25313763", c)
}

func TestCVRFormat(t *testing.T) {
	v := CVR{}
	assert.Equal(t, "25 31 37 63", v.Format("25313763"))

	c, err := v.Compact(v.Format("25313763"))
	require.NoError(t, err)
	assert.Equal(t, "25313763", c)
}

func TestCVRValidate(t *testing.T) {
	v := CVR{}

	tests := []struct {
		name    string
		number  string
		wantErr error
	}{
		{
			name:   "valid weighted sum",
			number: "25313763",
		},
		{
			name:   "valid with VAT prefix",
			number: "DK25313763",
		},
		{
			name:    "failing weighted sum",
			number:  "25313764",
			wantErr: validate.ErrInvalidChecksum,
		},
		{
			name:    "leading zero",
			number:  "05313763",
			wantErr: validate.ErrInvalidFormat,
		},
		{
			name:    "seven digits",
			number:  "2531376",
			wantErr: validate.ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.number, now)
			if tt.wantErr != nil {
				require.False(t, res.Valid)
				assert.ErrorIs(t, res.Err, tt.wantErr)
				return
			}
			require.NoError(t, res.Err)
			assert.True(t, res.Valid)
			assert.True(t, res.IsCompany)
		})
	}
}

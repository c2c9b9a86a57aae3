package service

import (
	"testing"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{name: "local", phone: "0712345678", want: "254712345678"},
		{name: "local 01", phone: "0110345678", want: "254110345678"},
		{name: "international plus", phone: "+254712345678", want: "254712345678"},
		{name: "international", phone: "254712345678", want: "254712345678"},
		{name: "short", phone: "712345678", want: "254712345678"},
		{name: "spaces", phone: " 0712 345 678 ", want: "254712345678"},
		{name: "empty", phone: "", wantErr: true},
		{name: "letters", phone: "07abc45678", wantErr: true},
		{name: "landline", phone: "0201234567", wantErr: true},
		{name: "too long", phone: "25471234567899", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DecodeEscaped(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		expect    map[string]string
		expectErr bool
	}{
		{
			name:   "plain json",
			body:   `{"name":"AK-47 | Redline"}`,
			expect: map[string]string{"name": "AK-47 | Redline"},
		},
		{
			name:   "escaped slashes",
			body:   `{"icon":"https:\/\/community.akamai.steamstatic.com\/economy\/image\/abc"}`,
			expect: map[string]string{"icon": "https://community.akamai.steamstatic.com/economy/image/abc"},
		},
		{
			name:   "double escaped slashes in html fragment",
			body:   `{"html":"<a href=\"https:\\/\\/steamcommunity.com\\/market\">x<\/a>"}`,
			expect: map[string]string{"html": `<a href="https://steamcommunity.com/market">x</a>`},
		},
		{
			name:      "malformed json",
			body:      `{"name":`,
			expectErr: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var out map[string]string
			err := DecodeEscaped([]byte(tt.body), &out)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, out)
		})
	}
}

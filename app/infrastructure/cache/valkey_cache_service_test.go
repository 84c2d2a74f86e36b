package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValkeyURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		address  string
		password string
		db       int
		wantErr  bool
	}{
		{name: "plain address", url: "localhost:6379", address: "localhost:6379", db: -1},
		{name: "scheme only", url: "valkey://cache:6379", address: "cache:6379", db: -1},
		{name: "password and db", url: "valkey://:s3cret@cache:6379/2", address: "cache:6379", password: "s3cret", db: 2},
		{name: "non numeric db ignored", url: "redis://cache:6379/x", address: "cache:6379", db: -1},
		{name: "missing host", url: "valkey:///0", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			address, password, db, err := parseValkeyURL(tc.url)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.address, address)
			require.Equal(t, tc.password, password)
			require.Equal(t, tc.db, db)
		})
	}
}

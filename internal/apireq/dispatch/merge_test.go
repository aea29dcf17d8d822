package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yooztech/mcp-api-request/internal/apireq/tokencfg"
)

func TestPartition(t *testing.T) {
	entries := []tokencfg.TokenEntry{
		{Type: tokencfg.KindHeader, Key: "Authorization", Value: "Bearer abc"},
		{Type: tokencfg.KindHeader, Key: "X-Empty", Value: ""},
		{Type: tokencfg.KindParam, Key: "access_token", Value: "tok"},
		{Type: tokencfg.KindParam, Key: "unused", Value: ""},
	}

	headers, params := Partition(entries)
	assert.Equal(t, map[string]string{"Authorization": "Bearer abc"}, headers)
	assert.Equal(t, map[string]string{"access_token": "tok"}, params)
}

func TestPartitionAllEmpty(t *testing.T) {
	headers, params := Partition([]tokencfg.TokenEntry{
		{Type: tokencfg.KindHeader, Key: "a", Value: ""},
		{Type: tokencfg.KindParam, Key: "b", Value: ""},
	})
	assert.Empty(t, headers)
	assert.Empty(t, params)
}

func TestMergeCallerWins(t *testing.T) {
	base := map[string]string{"Authorization": "stored", "X-Extra": "kept"}
	override := map[string]string{"Authorization": "caller"}

	merged := Merge(base, override)
	assert.Equal(t, "caller", merged["Authorization"])
	assert.Equal(t, "kept", merged["X-Extra"])

	// inputs must not be mutated
	assert.Equal(t, "stored", base["Authorization"])
	assert.Equal(t, map[string]string{"Authorization": "caller"}, override)
}

func TestMergeNilInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.Equal(t, map[string]string{"k": "v"}, Merge(nil, map[string]string{"k": "v"}))
	assert.Equal(t, map[string]string{"k": "v"}, Merge(map[string]string{"k": "v"}, nil))
}

func TestNormalizeMethod(t *testing.T) {
	m, err := NormalizeMethod("get")
	assert.Nil(t, err)
	assert.Equal(t, "GET", m)

	m, err = NormalizeMethod(" Post ")
	assert.Nil(t, err)
	assert.Equal(t, "POST", m)

	_, err = NormalizeMethod("")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NormalizeMethod("FETCH")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValidateURL(t *testing.T) {
	assert.Nil(t, ValidateURL("https://example.com/x"))
	assert.Nil(t, ValidateURL("http://localhost:8080/api?q=1"))

	for _, bad := range []string{"", "example.com/x", "/relative/path", "ftp://example.com", "http://"} {
		assert.ErrorIs(t, ValidateURL(bad), ErrInvalidArgument, "url %q", bad)
	}
}

package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterKey_NeverFormatsValue(t *testing.T) {
	key := MasterKey("hunter2")

	assert.Equal(t, "[REDACTED]", fmt.Sprint(key))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", key))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%s", key))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%#v", key))
	assert.NotContains(t, fmt.Errorf("unlock with %v failed", key).Error(), "hunter2")

	b, err := json.Marshal(struct {
		Key MasterKey `json:"key"`
	}{Key: key})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"[REDACTED]"}`, string(b))

	text, err := key.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "[REDACTED]", string(text))
}

func TestMasterKey_Reveal(t *testing.T) {
	key := MasterKey("hunter2")

	assert.Equal(t, "hunter2", key.Reveal())
	assert.Equal(t, 7, key.Len())
}

func TestSession_Expired(t *testing.T) {
	s := Session{ID: "id"}
	s.ExpiresAt = s.ExpiresAt.AddDate(2026, 0, 0)

	assert.False(t, s.Expired(s.ExpiresAt.Add(-1)))
	assert.True(t, s.Expired(s.ExpiresAt))
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-16", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-16", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

package settings

import (
	"testing"

	"content-validator/core/remote"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "ps_remote_domain")
	assert.Contains(t, keys, "ps_page_size")
	assert.Contains(t, keys, "local_folder")
	assert.True(t, IsKnown("ps_preserve_ids"))
	assert.False(t, IsKnown("ps_unknown"))
}

func TestApply(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	RegisterFlags(fs)

	err := fs.Parse([]string{
		"--ps_remote_domain=dest.example.com",
		"--ps_preserve_ids",
		"--ps_page_size=50",
		"--ps_bogus=1",
		"--sample_count", "10",
	})
	require.NoError(t, err)

	base := Settings{RemoteKey: "stored-key", SyncMethod: "push", PageSize: 5}
	out, err := Apply(base, fs)
	require.NoError(t, err)

	assert.Equal(t, "dest.example.com", out.RemoteDomain)
	assert.Equal(t, "stored-key", out.RemoteKey, "unchanged options keep stored values")
	assert.True(t, out.PreserveIDs)
	assert.Equal(t, 50, out.PageSize)
	assert.Equal(t, 10, out.SampleCount)
	assert.Equal(t, "push", out.SyncMethod)
}

func TestApply_InvalidNumber(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--ps_page_size=lots"}))

	_, err := Apply(Settings{}, fs)
	assert.Error(t, err)
}

func TestPairs(t *testing.T) {
	pairs := Settings{RemoteDomain: "a.example", PageSize: 5, PreserveIDs: true}.Pairs()
	require.Len(t, pairs, len(Keys()))
	assert.Equal(t, Pair{Key: "ps_remote_domain", Value: "a.example"}, pairs[0])

	values := map[string]string{}
	for _, p := range pairs {
		values[p.Key] = p.Value
	}
	assert.Equal(t, "5", values["ps_page_size"])
	assert.Equal(t, "true", values["ps_preserve_ids"])
}

func TestRemote(t *testing.T) {
	base := remote.Config{Domain: "configured.example", Key: "k1", UseSSL: true}

	assert.Equal(t, base, Settings{}.Remote(base))

	got := Settings{RemoteDomain: "cli.example", RemoteKey: "k2"}.Remote(base)
	assert.Equal(t, "cli.example", got.Domain)
	assert.Equal(t, "k2", got.Key)
	assert.True(t, got.UseSSL)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminPolicy_CaseSensitive(t *testing.T) {
	p := NewAdminPolicy([]string{"justin@stickershuttle.com"})

	assert.True(t, p.IsAdmin("justin@stickershuttle.com"))
	assert.False(t, p.IsAdmin("Justin@stickershuttle.com"))
	assert.False(t, p.IsAdmin(""))
	assert.False(t, p.IsAdmin("someone@else.com"))
}

func TestAdminPolicy_DoesNotAliasInput(t *testing.T) {
	emails := []string{"a@x.com"}
	p := NewAdminPolicy(emails)
	emails[0] = "b@x.com"

	assert.True(t, p.IsAdmin("a@x.com"))
	assert.False(t, p.IsAdmin("b@x.com"))
}

func TestLoadPolicy_EmptyPathUsesDefaults(t *testing.T) {
	p, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Empty(t, p.AdminEmails)
	assert.Equal(t, []string{"sample-pack"}, p.SamplePack.ProductIDs)
}

func TestLoadPolicy_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	body := `admin_emails:
  - ops@stickershuttle.com
  - orders@stickershuttle.com
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ops@stickershuttle.com", "orders@stickershuttle.com"}, p.AdminEmails)
	// no sample_pack section: defaults survive
	assert.Equal(t, []string{"SS-SAMPLE-PACK"}, p.SamplePack.SKUs)
}

func TestLoadPolicy_SamplePackOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	body := `sample_pack:
  skus: [KIT-01]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"KIT-01"}, p.SamplePack.SKUs)
	assert.Empty(t, p.SamplePack.ProductIDs)
}

func TestLoadPolicy_BadFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin_emails: [unterminated"), 0o600))
	_, err = LoadPolicy(path)
	assert.Error(t, err)
}

func TestResolvePolicy_EnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin_emails: [file@x.com]\n"), 0o600))

	p, err := ResolvePolicy(AppConfig{AdminPolicyFile: path, AdminEmails: []string{"env@x.com"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"env@x.com"}, p.AdminEmails)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList("  "))
	assert.Equal(t, []string{"A@x.com", "b@x.com"}, splitList(" A@x.com , ,b@x.com"))
}

func TestStoreLocation_Fallback(t *testing.T) {
	assert.NotNil(t, AppConfig{StoreTimezone: "Not/AZone"}.StoreLocation())
	loc := AppConfig{StoreTimezone: "UTC"}.StoreLocation()
	assert.Equal(t, "UTC", loc.String())
}

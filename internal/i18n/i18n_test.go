package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	codes := Supported()
	assert.Contains(t, codes, "en")
	assert.Contains(t, codes, "ja")
}

func TestNew_UnknownLanguage(t *testing.T) {
	_, err := New("tlh")
	assert.Error(t, err)
}

func TestTranslator_Lookup(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Language())
	assert.Equal(t, "Sign in to Daily Standup", tr.T("login.title"))
	assert.Equal(t, "Yesterday's work", tr.T("dailyReport.yesterdayWork"))

	// Nested path.
	assert.Equal(t, "Password changed", tr.T("settings.password.changed"))
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "login.doesNotExist", tr.T("login.doesNotExist"))
	assert.Equal(t, "nope", tr.T("nope"))
	// A non-leaf node is not a message.
	assert.Equal(t, "login", tr.T("login"))
}

func TestTranslator_ParamSubstitution(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	got := tr.Tf("dailyReport.submitted", map[string]string{"date": "2026-08-31"})
	assert.Equal(t, "Report for 2026-08-31 submitted", got)

	// Unmatched placeholders stay put.
	got = tr.Tf("dailyReport.submitted", map[string]string{"other": "x"})
	assert.Equal(t, "Report for {date} submitted", got)
}

func TestTranslator_Japanese(t *testing.T) {
	tr, err := New("ja")
	require.NoError(t, err)

	assert.Equal(t, "日報", tr.T("dailyReport.title"))
	got := tr.Tf("team.inviteSuccess", map[string]string{"email": "bob@example.com"})
	assert.Equal(t, "bob@example.com に招待を送信しました", got)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		langEnv    string
		want       string
	}{
		{name: "configured wins", configured: "en", langEnv: "ja_JP.UTF-8", want: "en"},
		{name: "env exact", configured: "", langEnv: "en", want: "en"},
		{name: "env with region and encoding", configured: "", langEnv: "en_US.UTF-8", want: "en"},
		{name: "env prefix", configured: "", langEnv: "ja_JP", want: "ja"},
		{name: "unsupported falls to default", configured: "", langEnv: "fi_FI", want: DefaultLanguage},
		{name: "nothing set", configured: "", langEnv: "", want: DefaultLanguage},
		{name: "unsupported configured ignored", configured: "tlh", langEnv: "en_US", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LANG", tt.langEnv)
			assert.Equal(t, tt.want, Resolve(tt.configured))
		})
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "日本語", LanguageName("ja"))
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "xx", LanguageName("xx"))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("ja"))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("tlh"))
}

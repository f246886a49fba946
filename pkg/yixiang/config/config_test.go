package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
	"github.com/cognicore/yixiang/pkg/yixiang/store/memstore"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr error
	}{
		{
			name:    "full",
			content: "lexicon_path: lex.yaml\ndb_path: y.db\nmax_file_size: 2048\nserver:\n  addr: \":9090\"\n",
			want:    Config{LexiconPath: "lex.yaml", DBPath: "y.db", MaxFileSize: 2048, Server: ServerConfig{Addr: ":9090"}},
		},
		{
			name:    "defaults",
			content: "db_path: y.db\n",
			want:    Config{DBPath: "y.db", MaxFileSize: DefaultMaxFileSize, Server: ServerConfig{Addr: DefaultAddr}},
		},
		{
			name:    "negative size",
			content: "max_file_size: -1\n",
			wantErr: internalerr.ErrInvalidConfig,
		},
		{
			name:    "empty addr",
			content: "server:\n  addr: \"\"\n",
			wantErr: internalerr.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, "yixiang.yaml", tt.content))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "server: [unclosed"))
	assert.Error(t, err)
}

func TestLoaderDefaults(t *testing.T) {
	comp, err := (&Loader{}).Load(context.Background())
	require.NoError(t, err)
	defer comp.Close()

	assert.Equal(t, 146, comp.Lexicon.Len())
	assert.IsType(t, &memstore.Store{}, comp.Store)
}

func TestLoaderCustomLexiconAndSQLite(t *testing.T) {
	lexPath := writeFile(t, "lexicon.yaml", "terms: [月, 山]\ncommon_words: [明]\n")
	dbPath := filepath.Join(t.TempDir(), "y.db")

	comp, err := NewLoader(Config{LexiconPath: lexPath, DBPath: dbPath}).Load(context.Background())
	require.NoError(t, err)
	defer comp.Close()

	assert.Equal(t, []string{"月", "山"}, comp.Lexicon.Terms())
	assert.True(t, comp.Lexicon.IsCommon("明"))

	list, err := comp.Store.ListReports(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.FileExists(t, dbPath)
}

func TestLoaderBadLexicon(t *testing.T) {
	_, err := (&Loader{LexiconPath: "/nonexistent/lexicon.yaml"}).Load(context.Background())
	assert.Error(t, err)
}

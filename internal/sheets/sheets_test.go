package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

func newTestService(t *testing.T, h http.HandlerFunc) *gsheets.Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	svc, err := gsheets.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return svc
}

func TestAppendRow(t *testing.T) {
	var gotPath, gotQuery string
	var body gsheets.ValueRange

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"updates":{"updatedRange":"Warranty!A12:AC12"}}`))
	})

	a := NewAppender(svc, "sheet-123", "Warranty")
	rng, err := a.AppendRow(context.Background(), []any{"2023年12月18日01時00分", "T1", `=HYPERLINK("u","u")`})
	require.NoError(t, err)

	assert.Equal(t, "Warranty!A12:AC12", rng)
	assert.True(t, strings.HasPrefix(gotPath, "/v4/spreadsheets/sheet-123/values/"), gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ":append"), gotPath)
	assert.Contains(t, gotQuery, "valueInputOption=USER_ENTERED")
	assert.Contains(t, gotQuery, "insertDataOption=INSERT_ROWS")
	require.Len(t, body.Values, 1)
	assert.Equal(t, "T1", body.Values[0][1])
}

func TestAppendRow_Error(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"denied"}}`, http.StatusForbidden)
	})

	_, err := NewAppender(svc, "sheet-123", "Warranty").AppendRow(context.Background(), []any{"x"})
	assert.Error(t, err)
}

func TestNewService_BadKeyFile(t *testing.T) {
	_, err := NewService(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"type":"nonsense"}`), 0o600))
	_, err = NewService(context.Background(), bad)
	assert.Error(t, err)
}

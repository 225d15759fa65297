package assist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func suggestServer(t *testing.T, output string, healthy bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/v1/suggest", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"output":"` + output + `"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSelectorPrefersLocalWhenAvailable(t *testing.T) {
	localSrv := suggestServer(t, "local suggestion", true)
	remoteSrv := suggestServer(t, "remote suggestion", true)

	sel := NewSelector(
		NewLocalProvider(localSrv.URL),
		NewRemoteProvider(remoteSrv.URL, ""),
	)

	sug, err := sel.Suggest(context.Background(), Request{Section: "careerObjective", Text: "draft"})
	require.NoError(t, err)
	require.Equal(t, "local", sug.Source)
	require.Equal(t, "local suggestion", sug.Text)
}

func TestSelectorFallsBackWhenLocalUnhealthy(t *testing.T) {
	localSrv := suggestServer(t, "local suggestion", false)
	remoteSrv := suggestServer(t, "remote suggestion", true)

	sel := NewSelector(
		NewLocalProvider(localSrv.URL),
		NewRemoteProvider(remoteSrv.URL, ""),
	)

	sug, err := sel.Suggest(context.Background(), Request{Section: "skills", Text: "draft"})
	require.NoError(t, err)
	require.Equal(t, "remote", sug.Source)
}

func TestSelectorFallsBackWhenNoLocalConfigured(t *testing.T) {
	remoteSrv := suggestServer(t, "remote suggestion", true)

	sel := NewSelector(NewLocalProvider(""), NewRemoteProvider(remoteSrv.URL, ""))

	sug, err := sel.Suggest(context.Background(), Request{Section: "skills", Text: "draft"})
	require.NoError(t, err)
	require.Equal(t, "remote", sug.Source)
}

func TestSelectorRequiresSection(t *testing.T) {
	sel := NewSelector(nil, NewRemoteProvider("http://unused", ""))
	_, err := sel.Suggest(context.Background(), Request{Text: "draft"})
	require.Error(t, err)
}

func TestExtractOutput(t *testing.T) {
	got, err := extractOutput([]byte(`{"output":"hello"}`))
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	got, err = extractOutput([]byte("Here you go:\n```json\n{\"output\":\"wrapped\"}\n```"))
	require.NoError(t, err)
	require.Equal(t, "wrapped", got)

	_, err = extractOutput([]byte("no json here"))
	require.Error(t, err)
}

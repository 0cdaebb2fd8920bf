package debugapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torafjell/holdem-client/internal/client"
	"github.com/torafjell/holdem-client/internal/screen"
)

type fakeQuerier struct {
	snap client.Snapshot
	err  error
}

func (f fakeQuerier) Snapshot(context.Context) (client.Snapshot, error) {
	return f.snap, f.err
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(Routes(fakeQuerier{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStateReturnsSnapshot(t *testing.T) {
	srv := httptest.NewServer(Routes(fakeQuerier{snap: client.Snapshot{
		Screen:   screen.Waiting,
		GameCode: "ABCD",
	}}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "ABCD", got["game_code"])
}

func TestStateUnavailable(t *testing.T) {
	srv := httptest.NewServer(Routes(fakeQuerier{err: errors.New("loop is gone")}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

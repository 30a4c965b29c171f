package health_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenirovka/rosterbot/internal/health"
)

func TestServerReportsAlive(t *testing.T) {
	listener := httptest.NewUnstartedServer(nil).Listener
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	s := health.NewServer(addr)
	s.Start()
	defer func() {
		assert.NoError(t, s.Stop(context.Background()))
	}()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/")
		if err == nil {
			break
		}
	}
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bot is running", string(body))
}

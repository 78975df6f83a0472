package bootstrap_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctor-directory/cmd/bootstrap"
	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_LoadsDirectoryOnceAndShutsDown(t *testing.T) {
	calls := make(chan struct{}, 10)
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls <- struct{}{}
		io.WriteString(w, `{"doctors":[{"name":"Dr A"},{"name":"Dr B"}]}`)
	}))
	defer source.Close()

	cfg := &config.Config{
		App:       config.AppConfig{Port: "0", Env: "test"},
		Directory: config.DirectoryConfig{SourceURL: source.URL},
	}
	log, _ := test.NewNullLogger()
	app := bootstrap.NewWithConfig(cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	assert.Eventually(t, func() bool {
		return app.DirectoryRepo.Snapshot().Status == entity.LoadStatusSuccess
	}, 5*time.Second, 10*time.Millisecond)
	assert.Len(t, app.DirectoryRepo.Snapshot().Doctors, 2)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	assert.Len(t, calls, 1)
}

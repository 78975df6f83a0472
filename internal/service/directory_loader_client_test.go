package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-directory/config"
	"doctor-directory/internal/domain/derivation"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/infrastructure/directory"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, status int, body string) entity.DirectorySnapshot {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	defer srv.Close()

	log, _ := test.NewNullLogger()
	repo := repository.NewDirectoryRepository()
	client := directory.NewClient(config.DirectoryConfig{SourceURL: srv.URL}, log)

	require.NoError(t, service.NewDirectoryLoader(log, client, repo).Load(context.Background()))
	return repo.Snapshot()
}

func TestLoad_MalformedPayloadIsEmptyWithoutError(t *testing.T) {
	snapshot := loadFrom(t, http.StatusOK, `{"status":"ok"}`)

	assert.Equal(t, entity.LoadStatusSuccess, snapshot.Status)
	assert.Empty(t, snapshot.Error)
	assert.Empty(t, derivation.Derive(snapshot.Doctors, entity.DoctorFilter{}))
}

func TestLoad_ServerErrorIsVisible(t *testing.T) {
	snapshot := loadFrom(t, http.StatusInternalServerError, `{}`)

	assert.Equal(t, entity.LoadStatusFailure, snapshot.Status)
	assert.Equal(t, "Failed to load doctor data. HTTP error! status: 500 - Internal Server Error", snapshot.Error)
	assert.Empty(t, derivation.Derive(snapshot.Doctors, entity.DoctorFilter{}))
}

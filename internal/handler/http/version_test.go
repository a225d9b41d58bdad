package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-prompt-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)

	want := models.VersionResponse{Version: "1.2.3", Date: "2026-06-01", Commit: "abc123"}
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(want)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/version", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

type mockPageService struct {
	mock.Mock
}

func (m *mockPageService) Render(ctx context.Context, params domain.Params) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func TestServePage(t *testing.T) {
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, domain.Params{{Name: "b", Value: "2"}, {Name: "a", Value: "1"}}).
		Return("<h4>Form Submission: 2 1 </h4>", nil)

	server := httptest.NewServer(NewHandler(NewPageHandler(svc)))
	defer server.Close()

	resp, err := http.Get(server.URL + "/?b=2&a=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
	assert.Equal(t, "<h4>Form Submission: 2 1 </h4>", string(body))
	svc.AssertExpectations(t)
}

func TestServePage_Post(t *testing.T) {
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, domain.Params(nil)).Return("page", nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	NewHandler(NewPageHandler(svc)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page", rec.Body.String())
}

func TestServePage_StoreFailure(t *testing.T) {
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, mock.Anything).Return("", errors.Join(domain.ErrStoreRead, errors.New("timeout")))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	NewHandler(NewPageHandler(svc)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error\n", rec.Body.String())
}

func TestRouter_SingleEndpoint(t *testing.T) {
	svc := new(mockPageService)

	req := httptest.NewRequest(http.MethodGet, "/other", nil)
	rec := httptest.NewRecorder()
	NewHandler(NewPageHandler(svc)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

package lambda

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
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

func TestHandle(t *testing.T) {
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, domain.Params{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}).
		Return("<h4>Form Submission: 1 2 </h4>", nil)

	resp, err := NewHandler(svc).Handle(context.Background(), events.APIGatewayV2HTTPRequest{
		RawQueryString:        "a=1&b=2",
		QueryStringParameters: map[string]string{"a": "1", "b": "2"},
	})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Headers["Content-Type"])
	assert.Equal(t, "<h4>Form Submission: 1 2 </h4>", resp.Body)
	svc.AssertExpectations(t)
}

func TestHandle_NoQuery(t *testing.T) {
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, domain.Params(nil)).Return("page", nil)

	resp, err := NewHandler(svc).Handle(context.Background(), events.APIGatewayV2HTTPRequest{})
	require.NoError(t, err)
	assert.Equal(t, "page", resp.Body)
	svc.AssertExpectations(t)
}

func TestHandle_Error(t *testing.T) {
	boom := errors.Join(domain.ErrStoreWrite, errors.New("throttled"))
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, mock.Anything).Return("", boom)

	_, err := NewHandler(svc).Handle(context.Background(), events.APIGatewayV2HTTPRequest{RawQueryString: "a=1"})
	assert.ErrorIs(t, err, domain.ErrStoreWrite)
}

func TestEventParams_MapFallback(t *testing.T) {
	params := eventParams(events.APIGatewayV2HTTPRequest{
		QueryStringParameters: map[string]string{"vote": "Category1Vote", "imageHash": "H"},
	})
	assert.Equal(t, domain.Params{{Name: "imageHash", Value: "H"}, {Name: "vote", Value: "Category1Vote"}}, params)
}

func TestHandleREST(t *testing.T) {
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, domain.Params{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}).
		Return("<h4>Form Submission: 1 2 </h4>", nil)

	resp, err := NewHandler(svc).HandleREST(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		QueryStringParameters: map[string]string{"b": "2", "a": "1"},
	})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Headers["Content-Type"])
	assert.Equal(t, "<h4>Form Submission: 1 2 </h4>", resp.Body)
	svc.AssertExpectations(t)
}

func TestHandleREST_NoQuery(t *testing.T) {
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, domain.Params(nil)).Return("page", nil)

	resp, err := NewHandler(svc).HandleREST(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "GET"})
	require.NoError(t, err)
	assert.Equal(t, "page", resp.Body)
}

func TestHandleREST_Error(t *testing.T) {
	svc := new(mockPageService)
	svc.On("Render", mock.Anything, mock.Anything).Return("", errors.Join(domain.ErrStoreRead, errors.New("timeout")))

	_, err := NewHandler(svc).HandleREST(context.Background(), events.APIGatewayProxyRequest{})
	assert.ErrorIs(t, err, domain.ErrStoreRead)
}

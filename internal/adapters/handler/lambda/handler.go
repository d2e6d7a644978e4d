package lambda

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
	"github.com/vncsmyrnk/votepage/internal/core/ports"
)

type Handler struct {
	service ports.PageService
}

func NewHandler(service ports.PageService) *Handler {
	return &Handler{
		service: service,
	}
}

// Handle answers an API Gateway HTTP API (payload v2) event. Only v2 carries
// the raw query string, so only here are values shown in submission order.
// Store failures are returned to the runtime untouched.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	slog.Info("Received event", slog.Any("event", event))

	page, err := h.render(ctx, eventParams(event))
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "text/html"},
		Body:       page,
	}, nil
}

// HandleREST answers an API Gateway REST API (payload v1) event. v1 only
// carries a parameter map, so values are shown in parameter name order.
func (h *Handler) HandleREST(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("Received event", slog.Any("event", event))

	page, err := h.render(ctx, domain.ParamsFromMap(event.QueryStringParameters))
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "text/html"},
		Body:       page,
	}, nil
}

func (h *Handler) render(ctx context.Context, params domain.Params) (string, error) {
	page, err := h.service.Render(ctx, params)
	if err != nil {
		slog.Error("failed to render page", "error", err)
		return "", err
	}
	return page, nil
}

func eventParams(event events.APIGatewayV2HTTPRequest) domain.Params {
	if event.RawQueryString != "" {
		return domain.ParseParams(event.RawQueryString)
	}
	return domain.ParamsFromMap(event.QueryStringParameters)
}

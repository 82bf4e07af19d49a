package main

import (
	"context"
	"rebalancer/api"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLambdaHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLambdaHandler(&api.ApiHandler{Logger: zap.NewNop().Sugar()})

	t.Run("proxies to the router", func(t *testing.T) {
		resp, err := handler.Handler(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod: "GET",
			Path:       "/",
		})
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
		require.Contains(t, resp.Body, "welcome to rebalancer")
	})

	t.Run("bad request body", func(t *testing.T) {
		resp, err := handler.Handler(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod: "POST",
			Path:       "/rebalance",
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       "{",
		})
		require.NoError(t, err)
		require.Equal(t, 400, resp.StatusCode)
	})
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"webhook-resender/internal/core/breaker"
	"webhook-resender/internal/core/ports"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// GatewayError is a non-2xx response from the downstream notification
// gateway.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned status %d", e.StatusCode)
}

// IsServerFailure classifies errors for the breaker: downstream 4xx is a
// caller error, not a gateway health signal, and must never trip it.
func IsServerFailure(err error) bool {
	if err == nil {
		return false
	}
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.StatusCode >= 500
	}
	// Network errors and timeouts
	return true
}

// gatewayResponse is the body returned by the gateway on success.
type gatewayResponse struct {
	Protocolo string `json:"protocolo"`
}

// GatewayClient implements ports.GatewayDispatcher: a resty HTTP client
// behind the circuit breaker.
type GatewayClient struct {
	http *resty.Client
	brk  *breaker.Breaker
	log  zerolog.Logger
}

// NewGatewayClient creates a breaker-protected gateway client. The breaker
// config's CallTimeout bounds each outbound POST.
func NewGatewayClient(brkCfg breaker.Config, log zerolog.Logger) *GatewayClient {
	brkCfg.IsFailure = IsServerFailure

	client := resty.New().
		SetHeader("Accept", "application/json")

	return &GatewayClient{
		http: client,
		brk:  breaker.New("gateway", brkCfg, log),
		log:  log,
	}
}

// NewGatewayClientWithHTTP injects a preconfigured resty client (tests).
func NewGatewayClientWithHTTP(httpClient *resty.Client, brkCfg breaker.Config, log zerolog.Logger) *GatewayClient {
	brkCfg.IsFailure = IsServerFailure
	return &GatewayClient{
		http: httpClient,
		brk:  breaker.New("gateway", brkCfg, log),
		log:  log,
	}
}

// Dispatch posts the payload through the breaker and returns the protocol
// identifier assigned by the gateway. When the gateway answers 2xx without
// a protocol body, the correlation id stands in as the protocol.
func (g *GatewayClient) Dispatch(ctx context.Context, payload ports.OutboundPayload) (string, error) {
	start := time.Now()
	protocol := payload.CorrelationID

	err := g.brk.Execute(ctx, func(callCtx context.Context) error {
		resp, err := g.http.R().
			SetContext(callCtx).
			SetHeaders(payload.Headers).
			SetBody(json.RawMessage(payload.Body)).
			Post(payload.URL)
		if err != nil {
			return fmt.Errorf("posting notification: %w", err)
		}

		if resp.IsError() {
			return &GatewayError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
		}

		var gr gatewayResponse
		if jsonErr := json.Unmarshal(resp.Body(), &gr); jsonErr == nil && gr.Protocolo != "" {
			protocol = gr.Protocolo
		}
		return nil
	})

	if err != nil {
		g.log.Warn().
			Err(err).
			Str("url", payload.URL).
			Str("correlation_id", payload.CorrelationID).
			Dur("elapsed", time.Since(start)).
			Msg("gateway dispatch failed")
		return "", err
	}

	g.log.Info().
		Str("url", payload.URL).
		Str("correlation_id", payload.CorrelationID).
		Str("protocolo", protocol).
		Dur("elapsed", time.Since(start)).
		Msg("gateway dispatch delivered")
	return protocol, nil
}

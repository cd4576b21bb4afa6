package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const maxBodySize = 1 << 20

// APIClient fetches recipes over HTTP and probes liveness through the
// server's gRPC health service.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	conn       *grpc.ClientConn
	health     healthpb.HealthClient
}

// NewAPIClient builds a client for the HTTP API at baseURL. healthAddr may be
// empty, in which case Ping always reports ErrUnavailable.
func NewAPIClient(baseURL, healthAddr string, timeout time.Duration) (*APIClient, error) {
	c := &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}

	if healthAddr != "" {
		conn, err := grpc.NewClient(healthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, err
		}
		c.conn = conn
		c.health = healthpb.NewHealthClient(conn)
	}
	return c, nil
}

func (c *APIClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// GetRecipe issues GET {base}/api/recipes/{id}. Any non-2xx status maps to
// ErrNotFound; transport failures map to ErrUnavailable.
func (c *APIClient) GetRecipe(ctx context.Context, id string) (*models.RemoteRecipe, error) {
	endpoint := c.baseURL + "/api/recipes/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	}

	var r models.RemoteRecipe
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrNotFound, err)
	}
	return &r, nil
}

func (c *APIClient) Ping(ctx context.Context) error {
	if c.health == nil {
		return ErrUnavailable
	}

	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return c.mapError(err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (c *APIClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

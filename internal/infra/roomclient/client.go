package roomclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hotelier/internal/pkg/config"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

// Client talks to the room registry over HTTP. Claim and release are single
// calls; the registry performs find-and-mark atomically on its side, so the
// client never reads room state before writing it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

func New(cfg config.RoomClientConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
	}
}

type claimRequest struct {
	RoomID     *uuid.UUID `json:"room_id,omitempty"`
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	RoomTypeID *uuid.UUID `json:"room_type_id,omitempty"`
}

type claimResponse struct {
	ID     uuid.UUID `json:"id"`
	Number string    `json:"number"`
}

func (c *Client) ClaimByID(ctx context.Context, roomID uuid.UUID) (*commands.ClaimedRoom, error) {
	return c.claim(ctx, claimRequest{RoomID: &roomID}, commands.ErrGatewayRoomUnavailable)
}

func (c *Client) ClaimByType(ctx context.Context, propertyID, roomTypeID uuid.UUID) (*commands.ClaimedRoom, error) {
	return c.claim(ctx, claimRequest{PropertyID: &propertyID, RoomTypeID: &roomTypeID}, commands.ErrGatewayNoRoomOfType)
}

func (c *Client) claim(ctx context.Context, req claimRequest, notFoundErr error) (*commands.ClaimedRoom, error) {
	status, body, err := c.post(ctx, "/api/rooms/claim", req)
	if err != nil {
		return nil, errs.Mark(err, commands.ErrRoomServiceUnavailable)
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
		var resp claimResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to decode claim response"), commands.ErrRoomServiceUnavailable)
		}
		return &commands.ClaimedRoom{ID: resp.ID, Number: resp.Number}, nil
	case http.StatusNotFound:
		return nil, notFoundErr
	case http.StatusConflict:
		return nil, commands.ErrGatewayRoomUnavailable
	default:
		return nil, errs.Mark(errs.Newf("claim returned unexpected status %d", status), commands.ErrRoomServiceUnavailable)
	}
}

func (c *Client) Release(ctx context.Context, roomID uuid.UUID) error {
	status, _, err := c.post(ctx, fmt.Sprintf("/api/rooms/%s/release", roomID), nil)
	if err != nil {
		return errs.Mark(err, commands.ErrRoomServiceUnavailable)
	}

	switch status {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound, http.StatusConflict:
		return commands.ErrGatewayRoomUnavailable
	default:
		return errs.Mark(errs.Newf("release returned unexpected status %d", status), commands.ErrRoomServiceUnavailable)
	}
}

// post retries transport failures only. Any HTTP status, including 5xx, is a
// definitive answer from the registry and is returned to the caller.
func (c *Client) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	var encoded []byte
	if payload != nil {
		var err error
		encoded, err = json.Marshal(payload)
		if err != nil {
			return 0, nil, errs.Wrap(err, "failed to encode request body")
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
			}
			slog.Warn("retrying room service call",
				"path", path,
				"attempt", attempt+1,
				"error", lastErr.Error())
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
		if err != nil {
			return 0, nil, errs.Wrap(err, "failed to build room service request")
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		closeErr := resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if closeErr != nil {
			slog.Warn("failed to close room service response body", "error", closeErr.Error())
		}
		return resp.StatusCode, body, nil
	}

	return 0, nil, errs.Wrap(lastErr, "room service unreachable")
}

// Package submit delivers compiled orders to the back office. The
// primary channel is a templated email API call; any failure there
// routes to a mailto compose request instead of surfacing an error, so
// an order is never silently dropped.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fursheti/catering-orders/internal/checkout"
)

// DefaultEndpoint is the EmailJS REST endpoint for templated sends.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Channel names the path an order was delivered through.
type Channel string

const (
	// ChannelPrimary means the provider accepted the templated send.
	ChannelPrimary Channel = "primary"
	// ChannelFallback means the order was handed to the buyer's own
	// mail surface as a pre-filled compose request. Guaranteed, but
	// without delivery confirmation.
	ChannelFallback Channel = "fallback"
)

// Outcome is the result of a Submit call. ComposeURL is set only on the
// fallback channel; the caller forwards it to the buyer's mail surface.
type Outcome struct {
	OrderID    string  `json:"order_id"`
	Channel    Channel `json:"channel"`
	ComposeURL string  `json:"compose_url,omitempty"`
}

// Config holds the primary channel credentials and the receiving inbox.
// Absence of any one credential forces the fallback path.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Inbox      string
	// Endpoint overrides DefaultEndpoint; used by tests.
	Endpoint string
}

func (c Config) complete() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// Gateway submits orders. Safe for concurrent use.
type Gateway struct {
	cfg    Config
	client *http.Client
}

func NewGateway(cfg Config) *Gateway {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return &Gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// sendRequest is the provider's templated-send payload.
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Submit delivers the order. It never fails from the caller's point of
// view: when the primary channel is misconfigured or errors, the outcome
// carries the fallback compose request instead. There is no retry and no
// deduplication; two submits produce two messages.
func (g *Gateway) Submit(ctx context.Context, o *checkout.Order) Outcome {
	text := FormatOrderText(o)

	if !g.cfg.complete() {
		slog.WarnContext(ctx, "primary channel not configured, using compose fallback", "order_id", o.ID)
		return g.fallback(o, text)
	}

	err := g.sendPrimary(ctx, o, text)
	if err == nil {
		slog.InfoContext(ctx, "order delivered via primary channel", "order_id", o.ID)
		return Outcome{OrderID: o.ID, Channel: ChannelPrimary}
	}
	slog.WarnContext(ctx, "primary channel failed, using compose fallback", "order_id", o.ID, "error", err)
	return g.fallback(o, text)
}

func (g *Gateway) fallback(o *checkout.Order, text string) Outcome {
	return Outcome{
		OrderID:    o.ID,
		Channel:    ChannelFallback,
		ComposeURL: composeMailto(g.cfg.Inbox, o.ID, text),
	}
}

func (g *Gateway) sendPrimary(ctx context.Context, o *checkout.Order, text string) error {
	payload := sendRequest{
		ServiceID:  g.cfg.ServiceID,
		TemplateID: g.cfg.TemplateID,
		UserID:     g.cfg.PublicKey,
		TemplateParams: map[string]any{
			"to_email":       g.cfg.Inbox,
			"order_id":       o.ID,
			"customer_name":  o.Customer.Name,
			"customer_phone": o.Customer.Phone,
			"customer_email": o.Customer.Email,
			"order_details":  text,
			"grand_total":    o.GrandTotal.String(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call provider: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", res.StatusCode)
	}
	return nil
}

// composeMailto builds the compose request for the buyer's own mail
// surface: receiving inbox, New Order subject, canonical body.
func composeMailto(inbox, orderID, text string) string {
	subject := escape("New Order #" + orderID)
	body := escape(text)
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", inbox, subject, body)
}

// escape percent-encodes for a mailto query; QueryEscape's '+' for
// spaces is not understood by mail clients.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

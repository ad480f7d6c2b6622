package external

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"order-offer-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentClient struct {
	client *Client
}

func NewPaymentClient(client *Client) *PaymentClient {
	return &PaymentClient{client: client}
}

// Hold reserves amount against the order. A 409 means an earlier attempt already
// placed the hold and its response was lost, so it counts as success.
func (p *PaymentClient) Hold(ctx context.Context, userID int64, orderID uuid.UUID, amount int64) error {
	err := p.settle(ctx, userID, orderID, amount, "hold")
	if err != nil && StatusCode(err) == http.StatusConflict {
		p.client.logger.Info("payment hold already present", "user_id", userID, "order_id", orderID.String())
		return nil
	}
	return err
}

func (p *PaymentClient) Clear(ctx context.Context, userID int64, orderID uuid.UUID, amount int64) error {
	return p.settle(ctx, userID, orderID, amount, "clear")
}

func (p *PaymentClient) settle(ctx context.Context, userID int64, orderID uuid.UUID, amount int64, action string) error {
	segments := []string{"payments", strconv.FormatInt(userID, 10), orderID.String(), action}
	params := url.Values{"amount": []string{strconv.FormatInt(amount, 10)}}

	return p.client.Critical().Do(ctx, "payment."+action, func(ctx context.Context) error {
		var resp successResponse
		if err := p.client.call(ctx, http.MethodPut, segments, params, &resp, nil); err != nil {
			return err
		}
		if !resp.Success {
			return errs.Wrapf(errs.ErrPaymentDeclined, "payment %s declined for order %s", action, orderID)
		}
		return nil
	})
}

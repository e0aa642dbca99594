package passport

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

type paymentReport struct {
	UserID string  `json:"userID"`
	Amount float64 `json:"amount"`
}

// UpdatePayments reports a top-up amount for a user to the anti-addiction service.
func (p *Client) UpdatePayments(ctx context.Context, userID string, amount float64) (uos.Result[struct{}], error) {
	return p.uos.Exec(ctx, http.MethodPost, p.url("/v1/anti-addiction/payments"), paymentReport{
		UserID: userID,
		Amount: amount,
	})
}

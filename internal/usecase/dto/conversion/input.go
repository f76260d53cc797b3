package conversiondto

import "time"

type LogSaleInput struct {
	AffiliateID string
	Amount      float64
	CreatedAt   time.Time // zero value defaults to now
}

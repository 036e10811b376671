package sysclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

func TestUnsupportedMapper_NoRecord(t *testing.T) {
	var m Mapper = UnsupportedMapper{}
	ctx := context.Background()
	obj := jsonview.Object{"id": "x"}

	_, ok, err := m.Transfer(ctx, obj)
	assert.False(t, ok)
	assert.NoError(t, err)

	_, ok, err = m.TransactionHistory(ctx, obj)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestUnsupportedClient_Errors(t *testing.T) {
	c := UnsupportedClient{}
	ctx := context.Background()

	_, err := c.GetTransfers(ctx, TransfersQuery{})
	assert.True(t, errors.Is(err, model.ErrUnsupported))

	err = c.DeleteSubscription(ctx, "sub")
	assert.True(t, errors.Is(err, model.ErrUnsupported))

	_, err = c.EstimateTransactionFee(ctx, "bitcoin-mainnet", []byte{1})
	assert.True(t, errors.Is(err, model.ErrUnimplemented))
}

func TestTransactionsQuery_PageSize(t *testing.T) {
	size := uint64(7)
	tests := []struct {
		name  string
		query TransactionsQuery
		want  uint64
	}{
		{name: "explicit", query: TransactionsQuery{MaxPageSize: &size}, want: 7},
		{name: "with transfers", query: TransactionsQuery{IncludeTransfers: true}, want: 20},
		{name: "without transfers", query: TransactionsQuery{}, want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.PageSize(); got != tt.want {
				t.Errorf("PageSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

package sysclient

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

// UnsupportedMapper is embedded by mappers of backends that do not carry every entity.
// Each method reports "no record".
type UnsupportedMapper struct{}

func (UnsupportedMapper) Blockchain(context.Context, jsonview.Object) (model.Blockchain, bool, error) {
	return model.Blockchain{}, false, nil
}

func (UnsupportedMapper) Currency(context.Context, jsonview.Object) (model.Currency, bool, error) {
	return model.Currency{}, false, nil
}

func (UnsupportedMapper) Transfer(context.Context, jsonview.Object) (model.Transfer, bool, error) {
	return model.Transfer{}, false, nil
}

func (UnsupportedMapper) Transaction(context.Context, jsonview.Object) (model.Transaction, bool, error) {
	return model.Transaction{}, false, nil
}

func (UnsupportedMapper) Block(context.Context, jsonview.Object) (model.Block, bool, error) {
	return model.Block{}, false, nil
}

func (UnsupportedMapper) Subscription(context.Context, jsonview.Object) (model.Subscription, bool, error) {
	return model.Subscription{}, false, nil
}

func (UnsupportedMapper) Address(context.Context, jsonview.Object) (model.Address, bool, error) {
	return model.Address{}, false, nil
}

func (UnsupportedMapper) HederaAccount(context.Context, jsonview.Object) (model.HederaAccount, bool, error) {
	return model.HederaAccount{}, false, nil
}

func (UnsupportedMapper) TransactionHistory(context.Context, jsonview.Object) ([]model.TransactionHistory, bool, error) {
	return nil, false, nil
}

func (UnsupportedMapper) TransactionIdentifier(context.Context, jsonview.Object) (model.TransactionIdentifier, bool, error) {
	return model.TransactionIdentifier{}, false, nil
}

func (UnsupportedMapper) TransactionFee(context.Context, jsonview.Object) (model.TransactionFee, bool, error) {
	return model.TransactionFee{}, false, nil
}

// UnsupportedClient is embedded by clients that only offer part of Client.
// Each method fails with model.ErrUnsupported.
type UnsupportedClient struct{}

func (UnsupportedClient) GetCurrencies(context.Context, *string, *bool) ([]model.Currency, error) {
	return nil, model.NewUnsupportedError("get currencies")
}

func (UnsupportedClient) GetCurrency(context.Context, string) (model.Currency, error) {
	return model.Currency{}, model.NewUnsupportedError("get currency")
}

func (UnsupportedClient) GetSubscriptions(context.Context) ([]model.Subscription, error) {
	return nil, model.NewUnsupportedError("get subscriptions")
}

func (UnsupportedClient) GetSubscription(context.Context, string) (model.Subscription, error) {
	return model.Subscription{}, model.NewUnsupportedError("get subscription")
}

func (UnsupportedClient) GetOrCreateSubscription(context.Context, model.Subscription) (model.Subscription, error) {
	return model.Subscription{}, model.NewUnsupportedError("get or create subscription")
}

func (UnsupportedClient) CreateSubscription(context.Context, model.Subscription) (model.Subscription, error) {
	return model.Subscription{}, model.NewUnsupportedError("create subscription")
}

func (UnsupportedClient) UpdateSubscription(context.Context, model.Subscription) (model.Subscription, error) {
	return model.Subscription{}, model.NewUnsupportedError("update subscription")
}

func (UnsupportedClient) DeleteSubscription(context.Context, string) error {
	return model.NewUnsupportedError("delete subscription")
}

func (UnsupportedClient) GetTransfers(context.Context, TransfersQuery) ([]model.Transfer, error) {
	return nil, model.NewUnsupportedError("get transfers")
}

func (UnsupportedClient) GetTransfer(context.Context, string) (model.Transfer, error) {
	return model.Transfer{}, model.NewUnsupportedError("get transfer")
}

func (UnsupportedClient) GetTransactionHistory(context.Context, string, string) ([]model.TransactionHistory, error) {
	return nil, model.NewUnsupportedError("get transaction history")
}

func (UnsupportedClient) EstimateTransactionFee(context.Context, string, []byte) (model.TransactionFee, error) {
	return model.TransactionFee{}, model.NewUnimplementedError("estimate transaction fee")
}

func (UnsupportedClient) GetBlocks(context.Context, BlocksQuery) ([]model.Block, error) {
	return nil, model.NewUnsupportedError("get blocks")
}

func (UnsupportedClient) GetBlock(context.Context, string, BlockOptions) (model.Block, error) {
	return model.Block{}, model.NewUnsupportedError("get block")
}

func (UnsupportedClient) GetAddresses(context.Context, string, string) ([]model.Address, error) {
	return nil, model.NewUnsupportedError("get addresses")
}

func (UnsupportedClient) GetAddress(context.Context, string, string, *uint64) (model.Address, error) {
	return model.Address{}, model.NewUnsupportedError("get address")
}

func (UnsupportedClient) CreateAddress(context.Context, string, []byte) (model.Address, error) {
	return model.Address{}, model.NewUnsupportedError("create address")
}

func (UnsupportedClient) GetHederaAccount(context.Context, string, string) ([]model.HederaAccount, error) {
	return nil, model.NewUnsupportedError("get hedera account")
}

func (UnsupportedClient) CreateHederaAccount(context.Context, string, string) ([]model.HederaAccount, error) {
	return nil, model.NewUnsupportedError("create hedera account")
}

package blockset

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

const nativeCurrencyAddress = "__native__"

// Mapper reads the indexed service schema.
type Mapper struct {
	caps   model.Capabilities
	logger *zap.Logger
}

var _ sysclient.Mapper = (*Mapper)(nil)

// NewMapper builds a mapper validating transaction statuses against caps.
func NewMapper(caps model.Capabilities, logger *zap.Logger) *Mapper {
	return &Mapper{caps: caps, logger: logger.Named("blockset_mapper")}
}

func (m *Mapper) reject(entity string, o jsonview.Object, idField string) {
	id, _ := o.String(idField)
	m.logger.Warn("record rejected", zap.String("entity", entity), zap.String("id", id))
}

func amount(o jsonview.Object) (model.Amount, bool) {
	currency, ok := o.String("currency_id")
	if !ok {
		return model.Amount{}, false
	}
	value, ok := o.String("amount")
	if !ok {
		return model.Amount{}, false
	}
	a, err := model.NewAmount(currency, value)
	return a, err == nil
}

func objectAmount(o jsonview.Object, name string) (model.Amount, bool) {
	inner, ok := o.Object(name)
	if !ok {
		return model.Amount{}, false
	}
	return amount(inner)
}

func optionalString(o jsonview.Object, name string) *string {
	if s, ok := o.String(name); ok {
		return &s
	}
	return nil
}

func optionalUint64(o jsonview.Object, name string) *uint64 {
	if v, ok := o.Uint64(name); ok {
		return &v
	}
	return nil
}

func optionalStringMap(o jsonview.Object, name string) map[string]string {
	if m, ok := o.StringMap(name); ok {
		return m
	}
	return nil
}

func blockchainFee(o jsonview.Object) (model.BlockchainFee, bool) {
	confirmation, ok := o.Uint64("estimated_confirmation_in")
	if !ok {
		return model.BlockchainFee{}, false
	}
	fee, ok := objectAmount(o, "fee")
	if !ok {
		return model.BlockchainFee{}, false
	}
	tier, ok := o.String("tier")
	if !ok {
		return model.BlockchainFee{}, false
	}
	return model.BlockchainFee{Amount: fee, Tier: tier, ConfirmationTimeInMilliseconds: confirmation}, true
}

func (m *Mapper) Blockchain(_ context.Context, o jsonview.Object) (model.Blockchain, bool, error) {
	id, okID := o.String("id")
	name, okName := o.String("name")
	network, okNetwork := o.String("network")
	isMainnet, okMainnet := o.Bool("is_mainnet")
	currency, okCurrency := o.String("native_currency_id")
	height, okHeight := o.Int64("verified_height")
	final, okFinal := o.Uint32("confirmations_until_final")
	fees, okFees := jsonview.MapObjects(o, "fee_estimates", blockchainFee)
	if !okID || !okName || !okNetwork || !okMainnet || !okCurrency || !okHeight || !okFinal || !okFees {
		m.reject("blockchain", o, "id")
		return model.Blockchain{}, false, nil
	}

	b := model.Blockchain{ID: id}
	b.Name = name
	b.Network = network
	b.IsMainnet = isMainnet
	b.Currency = currency
	if height >= 0 {
		h := uint64(height)
		b.BlockHeight = &h
	}
	b.VerifiedBlockHash = optionalString(o, "verified_block_hash")
	b.FeeEstimates = fees
	b.ConfirmationsUntilFinal = final
	return b, true, nil
}

func denomination(o jsonview.Object) (model.CurrencyDenomination, bool) {
	name, ok := o.String("name")
	if !ok {
		return model.CurrencyDenomination{}, false
	}
	code, ok := o.String("short_name")
	if !ok {
		return model.CurrencyDenomination{}, false
	}
	decimals, ok := o.Uint8("decimals")
	if !ok {
		return model.CurrencyDenomination{}, false
	}
	return model.CurrencyDenomination{Name: name, Code: code, Decimals: decimals, Symbol: model.LookupSymbol(code)}, true
}

func (m *Mapper) Currency(_ context.Context, o jsonview.Object) (model.Currency, bool, error) {
	id, okID := o.String("currency_id")
	name, okName := o.String("name")
	code, okCode := o.String("code")
	kind, okType := o.String("type")
	bid, okBid := o.String("blockchain_id")
	verified, okVerified := o.Bool("verified")
	denominations, okDenominations := jsonview.MapObjects(o, "denominations", denomination)
	if !okID || !okName || !okCode || !okType || !okBid || !okVerified || !okDenominations {
		m.reject("currency", o, "currency_id")
		return model.Currency{}, false, nil
	}

	address := optionalString(o, "address")
	if address != nil && *address == nativeCurrencyAddress {
		address = nil
	}

	return model.Currency{
		ID:            id,
		Name:          name,
		Code:          code,
		Type:          kind,
		BlockchainID:  bid,
		Address:       address,
		Verified:      verified,
		Denominations: denominations,
	}, true, nil
}

func transfer(o jsonview.Object) (model.Transfer, bool) {
	id, ok := o.String("transfer_id")
	if !ok {
		return model.Transfer{}, false
	}
	bid, ok := o.String("blockchain_id")
	if !ok {
		return model.Transfer{}, false
	}
	index, ok := o.Uint64("index")
	if !ok {
		return model.Transfer{}, false
	}
	value, ok := objectAmount(o, "amount")
	if !ok {
		return model.Transfer{}, false
	}
	acks, _ := o.Uint64("acknowledgements")

	return model.Transfer{
		ID:               id,
		Source:           optionalString(o, "from_address"),
		Target:           optionalString(o, "to_address"),
		Amount:           value,
		Acknowledgements: acks,
		Index:            index,
		TransactionID:    optionalString(o, "transaction_id"),
		BlockchainID:     bid,
		Meta:             optionalStringMap(o, "meta"),
	}, true
}

func (m *Mapper) Transfer(_ context.Context, o jsonview.Object) (model.Transfer, bool, error) {
	t, ok := transfer(o)
	if !ok {
		m.reject("transfer", o, "transfer_id")
	}
	return t, ok, nil
}

func (m *Mapper) transaction(o jsonview.Object) (model.Transaction, bool) {
	id, ok := o.String("transaction_id")
	if !ok {
		return model.Transaction{}, false
	}
	bid, okBid := o.String("blockchain_id")
	hash, okHash := o.String("hash")
	identifier, okIdentifier := o.String("identifier")
	status, okStatus := o.String("status")
	size, okSize := o.Uint64("size")
	fee, okFee := objectAmount(o, "fee")
	if !okBid || !okHash || !okIdentifier || !okStatus || !okSize || !okFee {
		return model.Transaction{}, false
	}
	if !m.caps.AcceptsStatus(model.TransactionStatus(status)) {
		return model.Transaction{}, false
	}

	transfers := []model.Transfer{}
	if embedded, ok := o.Object("_embedded"); ok && embedded.Has("transfers") {
		transfers, ok = jsonview.MapObjects(embedded, "transfers", transfer)
		if !ok {
			return model.Transaction{}, false
		}
	}

	acks, _ := o.Uint64("acknowledgements")
	tx := model.Transaction{
		ID:               id,
		BlockchainID:     bid,
		Hash:             hash,
		Identifier:       identifier,
		BlockHash:        optionalString(o, "block_hash"),
		BlockHeight:      optionalUint64(o, "block_height"),
		Index:            optionalUint64(o, "index"),
		Confirmations:    optionalUint64(o, "confirmations"),
		Status:           model.TransactionStatus(status),
		Size:             size,
		Fee:              &fee,
		Transfers:        transfers,
		Acknowledgements: acks,
		Meta:             optionalStringMap(o, "meta"),
	}
	if ts, ok := o.Date("timestamp"); ok {
		tx.Timestamp = &ts
	}
	if seen, ok := o.Date("first_seen"); ok {
		tx.FirstSeen = &seen
	}
	if raw, ok := o.Data("raw"); ok {
		tx.Raw = raw
	}
	return tx, true
}

func (m *Mapper) Transaction(_ context.Context, o jsonview.Object) (model.Transaction, bool, error) {
	tx, ok := m.transaction(o)
	if !ok {
		m.reject("transaction", o, "transaction_id")
	}
	return tx, ok, nil
}

func (m *Mapper) Block(_ context.Context, o jsonview.Object) (model.Block, bool, error) {
	id, okID := o.String("block_id")
	bid, okBid := o.String("blockchain_id")
	hash, okHash := o.String("hash")
	height, okHeight := o.Uint64("height")
	mined, okMined := o.Date("mined")
	size, okSize := o.Uint64("size")
	if !okID || !okBid || !okHash || !okHeight || !okMined || !okSize {
		m.reject("block", o, "block_id")
		return model.Block{}, false, nil
	}

	var transactions []model.Transaction
	if o.Has("transactions") {
		var ok bool
		transactions, ok = jsonview.MapObjects(o, "transactions", m.transaction)
		if !ok {
			m.reject("block", o, "block_id")
			return model.Block{}, false, nil
		}
	}

	acks, _ := o.Uint64("acknowledgements")
	raw, _ := o.Data("raw")
	return model.Block{
		ID:               id,
		BlockchainID:     bid,
		Hash:             hash,
		Height:           height,
		Header:           optionalString(o, "header"),
		Raw:              raw,
		Mined:            mined,
		Size:             size,
		PrevHash:         optionalString(o, "prev_hash"),
		NextHash:         optionalString(o, "next_hash"),
		Transactions:     transactions,
		Acknowledgements: acks,
	}, true, nil
}

func (m *Mapper) Address(_ context.Context, o jsonview.Object) (model.Address, bool, error) {
	bid, okBid := o.String("blockchain_id")
	address, okAddress := o.String("address")
	timestamp, okTimestamp := o.Uint64("timestamp")
	balances, okBalances := jsonview.MapObjects(o, "balances", amount)
	if !okBid || !okAddress || !okTimestamp || !okBalances {
		m.reject("address", o, "address")
		return model.Address{}, false, nil
	}

	return model.Address{
		BlockchainID: bid,
		Address:      address,
		Nonce:        optionalUint64(o, "nonce"),
		Timestamp:    timestamp,
		Meta:         optionalStringMap(o, "meta"),
		Balances:     balances,
	}, true, nil
}

func (m *Mapper) HederaAccount(_ context.Context, o jsonview.Object) (model.HederaAccount, bool, error) {
	id, okID := o.String("account_id")
	status, okStatus := o.String("account_status")
	if !okID || !okStatus {
		m.reject("hedera_account", o, "account_id")
		return model.HederaAccount{}, false, nil
	}
	return model.HederaAccount{
		ID:      id,
		Balance: optionalUint64(o, "hbar_balance"),
		Deleted: status != "active",
	}, true, nil
}

func (m *Mapper) TransactionHistory(context.Context, jsonview.Object) ([]model.TransactionHistory, bool, error) {
	return nil, false, nil
}

func (m *Mapper) TransactionIdentifier(_ context.Context, o jsonview.Object) (model.TransactionIdentifier, bool, error) {
	id, okID := o.String("transaction_id")
	bid, okBid := o.String("blockchain_id")
	identifier, okIdentifier := o.String("identifier")
	if !okID || !okBid || !okIdentifier {
		m.reject("transaction_identifier", o, "transaction_id")
		return model.TransactionIdentifier{}, false, nil
	}
	return model.TransactionIdentifier{
		ID:           id,
		BlockchainID: bid,
		Hash:         optionalString(o, "hash"),
		Identifier:   identifier,
	}, true, nil
}

func (m *Mapper) TransactionFee(_ context.Context, o jsonview.Object) (model.TransactionFee, bool, error) {
	costUnits, ok := o.Uint64("cost_units")
	if !ok {
		return model.TransactionFee{}, false, nil
	}
	return model.TransactionFee{
		CostUnits:  costUnits,
		Properties: optionalStringMap(o, "properties"),
	}, true, nil
}

package transport

import (
	"encoding/hex"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

type amountDTO struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type feeDTO struct {
	Amount                         amountDTO `json:"amount"`
	Tier                           string    `json:"tier"`
	ConfirmationTimeInMilliseconds uint64    `json:"confirmation_time_in_milliseconds"`
}

type blockchainDTO struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Network                 string   `json:"network"`
	IsMainnet               bool     `json:"is_mainnet"`
	Currency                string   `json:"currency"`
	BlockHeight             *uint64  `json:"block_height,omitempty"`
	VerifiedBlockHash       *string  `json:"verified_block_hash,omitempty"`
	FeeEstimates            []feeDTO `json:"fee_estimates"`
	ConfirmationsUntilFinal uint32   `json:"confirmations_until_final"`
}

func newBlockchainDTO(b model.Blockchain) blockchainDTO {
	fees := make([]feeDTO, 0, len(b.FeeEstimates))
	for _, f := range b.FeeEstimates {
		fees = append(fees, feeDTO{
			Amount:                         amountDTO(f.Amount),
			Tier:                           f.Tier,
			ConfirmationTimeInMilliseconds: f.ConfirmationTimeInMilliseconds,
		})
	}
	return blockchainDTO{
		ID:                      b.ID,
		Name:                    b.Name,
		Network:                 b.Network,
		IsMainnet:               b.IsMainnet,
		Currency:                b.Currency,
		BlockHeight:             b.BlockHeight,
		VerifiedBlockHash:       b.VerifiedBlockHash,
		FeeEstimates:            fees,
		ConfirmationsUntilFinal: b.ConfirmationsUntilFinal,
	}
}

type transferDTO struct {
	ID     string    `json:"id"`
	Source *string   `json:"source,omitempty"`
	Target *string   `json:"target,omitempty"`
	Amount amountDTO `json:"amount"`
	Index  uint64    `json:"index"`
}

type outputDTO struct {
	Amount    uint64   `json:"amount"`
	Addresses []string `json:"addresses"`
}

type transactionDTO struct {
	ID            string        `json:"id"`
	BlockchainID  string        `json:"blockchain_id"`
	Hash          string        `json:"hash"`
	Identifier    string        `json:"identifier"`
	Status        string        `json:"status"`
	BlockHash     *string       `json:"block_hash,omitempty"`
	BlockHeight   *uint64       `json:"block_height,omitempty"`
	Confirmations *uint64       `json:"confirmations,omitempty"`
	Size          uint64        `json:"size"`
	Timestamp     *time.Time    `json:"timestamp,omitempty"`
	Raw           string        `json:"raw,omitempty"`
	Fee           *amountDTO    `json:"fee,omitempty"`
	Transfers     []transferDTO `json:"transfers"`
	Outputs       []outputDTO   `json:"outputs,omitempty"`
	Type          string        `json:"type,omitempty"`
	TokenAmount   *uint64       `json:"token_amount,omitempty"`
	MintID        *string       `json:"mint_id,omitempty"`
	SenderAddress *string       `json:"sender_address,omitempty"`
}

func newTransactionDTO(tx model.Transaction) transactionDTO {
	dto := transactionDTO{
		ID:            tx.ID,
		BlockchainID:  tx.BlockchainID,
		Hash:          tx.Hash,
		Identifier:    tx.Identifier,
		Status:        string(tx.Status),
		BlockHash:     tx.BlockHash,
		BlockHeight:   tx.BlockHeight,
		Confirmations: tx.Confirmations,
		Size:          tx.Size,
		Timestamp:     tx.Timestamp,
		Raw:           hex.EncodeToString(tx.Raw),
		Transfers:     make([]transferDTO, 0, len(tx.Transfers)),
		Type:          string(tx.Type),
		TokenAmount:   tx.TokenAmount,
		MintID:        tx.MintID,
		SenderAddress: tx.SenderAddress,
	}
	if tx.Fee != nil {
		fee := amountDTO(*tx.Fee)
		dto.Fee = &fee
	}
	for _, t := range tx.Transfers {
		dto.Transfers = append(dto.Transfers, transferDTO{
			ID:     t.ID,
			Source: t.Source,
			Target: t.Target,
			Amount: amountDTO(t.Amount),
			Index:  t.Index,
		})
	}
	for _, o := range tx.Outputs {
		dto.Outputs = append(dto.Outputs, outputDTO{Amount: o.Amount, Addresses: o.Addresses})
	}
	return dto
}

type historyDTO struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
}

type identifierDTO struct {
	ID           string  `json:"id"`
	BlockchainID string  `json:"blockchain_id"`
	Hash         *string `json:"hash,omitempty"`
	Identifier   string  `json:"identifier"`
}

type createTransactionRequest struct {
	Data       string `json:"data"`
	Identifier string `json:"identifier"`
}

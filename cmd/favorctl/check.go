package main

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

func checkFavorID(s string) (common.Hash, error) {
	if s == "" {
		return common.Hash{}, fmt.Errorf("favor id is required")
	}
	b, err := hexutil.Decode(s)
	if err != nil || len(b) > common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid favor id: %q", s)
	}
	return common.BytesToHash(b), nil
}

func checkAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address: %q", s)
	}
	return common.HexToAddress(s), nil
}

func checkAmount(name string, s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%s is required", name)
	}
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid %s: %q", name, s)
	}
	return amount, nil
}

func printTx(m *metadata, tx *types.Transaction) {
	fmt.Fprintf(m.w, "sent transaction: %s\n", tx.Hash().Hex()) // nolint: errcheck
}

package helpers

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/contract"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

// FavorExchange is a helper function to dial the eth node and bind the
// favor exchange contract from the given configuration. The client is
// returned so the caller can close it.
func FavorExchange(config *utils.FavorConfig) (*ethclient.Client, *contract.FavorExchange, error) {
	client, err := ethclient.Dial(config.EthAPIURL)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "error connecting to eth API %v", config.EthAPIURL)
	}
	favorExchange, err := contract.NewFavorExchange(config.ContractAddressHex(), client)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	log.Infof("Bound %v at %v", contract.FavorExchangeContractName, config.ContractAddressHex().Hex())
	return client, favorExchange, nil
}

// Transactor is a helper function to return the transact opts signing with
// the configured private key
func Transactor(config *utils.FavorConfig) (*bind.TransactOpts, error) {
	if config.PrivateKey == "" {
		return nil, errors.New("private key required to send transactions")
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(config.PrivateKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return bind.NewKeyedTransactor(key), nil
}

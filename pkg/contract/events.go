package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

const (
	logBufferSize = 64
)

var (
	// ErrUnknownEvent is returned when a log does not match any known event
	ErrUnknownEvent = errors.New("unknown favor exchange event")
	// ErrRemovedLog is returned for logs that were reverted by a chain reorg
	ErrRemovedLog = errors.New("log removed by chain reorganisation")
)

// FavorExchangeBalanceChanged represents a BalanceChanged event raised by the contract
type FavorExchangeBalanceChanged struct {
	UserAddr   common.Address
	NewBalance *big.Int
	Raw        types.Log
}

// FavorExchangeFavorID represents an event carrying only a favor id:
// FavorCreated, FavorCancel and FavorDone
type FavorExchangeFavorID struct {
	FavorId [32]byte // nolint: golint
	Raw     types.Log
}

// FavorExchangeFavorUser represents an event carrying a favor id and the acting
// user: FavorMatched, FavorVoteCancel and FavorVoteDone
type FavorExchangeFavorUser struct {
	FavorId  [32]byte // nolint: golint
	UserAddr common.Address
	Raw      types.Log
}

func metaFromLog(l types.Log) model.EventMeta {
	return model.EventMeta{
		BlockNumber: l.BlockNumber,
		TxHash:      l.TxHash,
		LogIndex:    l.Index,
	}
}

// eventTopics maps the topic ids of the named events to their names. Every
// name must be an event of the ABI.
func eventTopics(parsed abi.ABI, names []string) (map[common.Hash]string, error) {
	topics := make(map[common.Hash]string, len(names))
	for _, name := range names {
		ev, ok := parsed.Events[name]
		if !ok {
			return nil, errors.Errorf("event %v not found in favor exchange abi", name)
		}
		topics[ev.Id()] = name
	}
	return topics, nil
}

// eventName returns the name of the known event matching the first topic of the log
func (f *FavorExchange) eventName(l types.Log) (string, error) {
	if len(l.Topics) == 0 {
		return "", ErrUnknownEvent
	}
	name, ok := f.eventNames[l.Topics[0]]
	if !ok {
		return "", errors.Wrapf(ErrUnknownEvent, "topic %v", l.Topics[0].Hex())
	}
	return name, nil
}

// DecodeEvent decodes a contract log into one of the favor events
func (f *FavorExchange) DecodeEvent(l types.Log) (model.Event, error) {
	if l.Removed {
		return nil, ErrRemovedLog
	}
	name, err := f.eventName(l)
	if err != nil {
		return nil, err
	}
	meta := metaFromLog(l)

	switch name {
	case "BalanceChanged":
		ev := &FavorExchangeBalanceChanged{Raw: l}
		if err := f.contract.UnpackLog(ev, name, l); err != nil {
			return nil, errors.WithMessagef(err, "error unpacking %v", name)
		}
		return &model.BalanceChanged{EventMeta: meta, User: ev.UserAddr, Balance: ev.NewBalance}, nil

	case "FavorCreated", "FavorCancel", "FavorDone":
		ev := &FavorExchangeFavorID{Raw: l}
		if err := f.contract.UnpackLog(ev, name, l); err != nil {
			return nil, errors.WithMessagef(err, "error unpacking %v", name)
		}
		id := common.Hash(ev.FavorId)
		switch name {
		case "FavorCreated":
			return &model.FavorCreated{EventMeta: meta, ID: id}, nil
		case "FavorCancel":
			return &model.FavorFinalized{EventMeta: meta, ID: id, Outcome: model.FinalOutcomeCancelled}, nil
		}
		return &model.FavorFinalized{EventMeta: meta, ID: id, Outcome: model.FinalOutcomeDone}, nil

	case "FavorMatched", "FavorVoteCancel", "FavorVoteDone":
		ev := &FavorExchangeFavorUser{Raw: l}
		if err := f.contract.UnpackLog(ev, name, l); err != nil {
			return nil, errors.WithMessagef(err, "error unpacking %v", name)
		}
		id := common.Hash(ev.FavorId)
		switch name {
		case "FavorMatched":
			return &model.FavorMatched{EventMeta: meta, ID: id, Actor: ev.UserAddr}, nil
		case "FavorVoteCancel":
			return &model.FavorVoteCast{EventMeta: meta, ID: id, Actor: ev.UserAddr, Kind: model.VoteKindCancel}, nil
		}
		return &model.FavorVoteCast{EventMeta: meta, ID: id, Actor: ev.UserAddr, Kind: model.VoteKindDone}, nil
	}
	return nil, errors.Wrapf(ErrUnknownEvent, "event %v", name)
}

// filterQuery matches the logs of the contract with one of the known event topics
func (f *FavorExchange) filterQuery() ethereum.FilterQuery {
	ids := make([]common.Hash, 0, len(f.eventNames))
	for id := range f.eventNames {
		ids = append(ids, id)
	}
	return ethereum.FilterQuery{
		Addresses: []common.Address{f.address},
		Topics:    [][]common.Hash{ids},
	}
}

// FilterEvents retrieves and decodes past events. A nil toBlock means up to
// the latest block. Logs that fail to decode are skipped.
func (f *FavorExchange) FilterEvents(ctx context.Context, fromBlock uint64, toBlock *uint64) ([]model.Event, error) {
	query := f.filterQuery()
	query.FromBlock = new(big.Int).SetUint64(fromBlock)
	if toBlock != nil {
		query.ToBlock = new(big.Int).SetUint64(*toBlock)
	}
	logs, err := f.backend.FilterLogs(ctx, query)
	if err != nil {
		return nil, errors.WithMessage(err, "error filtering favor exchange logs")
	}
	events := make([]model.Event, 0, len(logs))
	for _, l := range logs {
		ev, err := f.DecodeEvent(l)
		if err != nil {
			log.Warningf("Skipping log %v/%v: err: %v", l.TxHash.Hex(), l.Index, err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// WatchEvents subscribes to the known event logs of the contract and delivers the decoded
// events to sink in the order the node emits them.
func (f *FavorExchange) WatchEvents(ctx context.Context, sink chan<- model.Event) (event.Subscription, error) {
	logs := make(chan types.Log, logBufferSize)
	sub, err := f.backend.SubscribeFilterLogs(ctx, f.filterQuery(), logs)
	if err != nil {
		return nil, errors.WithMessage(err, "error subscribing to favor exchange logs")
	}
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case l := <-logs:
				ev, err := f.DecodeEvent(l)
				if err != nil {
					log.Warningf("Skipping log %v/%v: err: %v", l.TxHash.Hex(), l.Index, err)
					continue
				}
				select {
				case sink <- ev:
				case err := <-sub.Err():
					return err
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

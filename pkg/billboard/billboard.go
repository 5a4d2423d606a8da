// Package billboard contains the local cache of the favor list
package billboard // import "github.com/favorexchange/favor-billboard/pkg/billboard"

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

const (
	// DefaultMaxHops is the default bound on favors visited by a refresh
	DefaultMaxHops = 10000
)

var (
	// ErrListTooLong is returned when a refresh visits more favors than allowed,
	// which happens if the list in the contract is malformed
	ErrListTooLong = errors.New("favor list exceeds max hops")
)

// FavorSource retrieves favors from the contract list
type FavorSource interface {
	FavorListHeadID(ctx context.Context) (common.Hash, error)
	Favor(ctx context.Context, id common.Hash) (*model.Favor, error)
}

// Config configures a Billboard
type Config struct {
	// MaxHops bounds the number of favors visited by Refresh, 0 uses the default
	MaxHops int
	// CallsPerSec limits the contract calls made by Refresh, 0 is unlimited
	CallsPerSec float64
}

// NewBillboard returns an empty Billboard backed by the given sources
func NewBillboard(source FavorSource, names *NameResolver, config *Config) *Billboard {
	maxHops := DefaultMaxHops
	limit := rate.Inf
	if config != nil {
		if config.MaxHops > 0 {
			maxHops = config.MaxHops
		}
		if config.CallsPerSec > 0 {
			limit = rate.Limit(config.CallsPerSec)
		}
	}
	return &Billboard{
		source:  source,
		names:   names,
		maxHops: maxHops,
		limiter: rate.NewLimiter(limit, 1),
		favors:  []*model.Favor{},
	}
}

// Billboard is the ordered local copy of the favors listed in the contract.
// It is rebuilt by Refresh and patched by the Apply methods.
// Billboard is not safe for concurrent use, it is owned by a single loop.
type Billboard struct {
	source  FavorSource
	names   *NameResolver
	maxHops int
	limiter *rate.Limiter
	favors  []*model.Favor
}

// Refresh rebuilds the billboard by walking the contract list from its head
// until the self referencing tail or an empty favor. The billboard is only
// replaced if the walk completes.
func (b *Billboard) Refresh(ctx context.Context) error {
	id, err := b.source.FavorListHeadID(ctx)
	if err != nil {
		return errors.WithMessage(err, "error retrieving favor list head")
	}

	favors := []*model.Favor{}
	for hops := 0; ; hops++ {
		if hops >= b.maxHops {
			return errors.Wrapf(ErrListTooLong, "stopped at %v after %v favors", id.Hex(), hops)
		}
		if err := b.limiter.Wait(ctx); err != nil {
			return errors.WithMessage(err, "error waiting for rate limiter")
		}
		favor, err := b.source.Favor(ctx, id)
		if err != nil {
			return errors.WithMessagef(err, "error retrieving favor %v", id.Hex())
		}
		if favor.IsEmpty() {
			log.V(2).Infof("Reached empty favor %v", id.Hex())
			break
		}
		b.resolveNames(ctx, favor)
		favors = append(favors, favor)
		if favor.IsTail() {
			break
		}
		id = favor.NextID()
	}

	b.favors = favors
	log.Infof("Refreshed billboard with %v favors", len(favors))
	return nil
}

// ApplyCreated appends a new favor. A favor with an id already on the
// billboard replaces the existing entry.
func (b *Billboard) ApplyCreated(ctx context.Context, favor *model.Favor) {
	b.resolveNames(ctx, favor)
	index := b.indexOf(favor.ID())
	if index >= 0 {
		log.Warningf("Favor %v already on billboard, replacing", favor.ID().Hex())
		b.favors[index] = favor
		return
	}
	b.favors = append(b.favors, favor)
}

// ApplyMatched assigns the actor to the open side of a favor: the client if it
// is unassigned, otherwise the provider. Returns the updated favor, or nil if
// nothing changed.
func (b *Billboard) ApplyMatched(ctx context.Context, id common.Hash, actor common.Address) *model.Favor {
	index := b.indexOf(id)
	if index < 0 {
		log.Warningf("FavorMatched for unknown favor %v, ignoring", id.Hex())
		return nil
	}
	current := b.favors[index]
	if current.IsParty(actor) {
		log.Warningf("FavorMatched for %v by existing party %v, ignoring", id.Hex(), actor.Hex())
		return nil
	}

	updated := current.Copy()
	if model.IsNullAddress(updated.ClientAddr()) {
		updated.SetClientAddr(actor)
	} else {
		updated.SetProviderAddr(actor)
	}
	b.resolveNames(ctx, updated)
	b.favors[index] = updated
	return updated
}

// ApplyVote sets the vote flag of the actor: the client flag if the actor is
// the client, otherwise the provider flag. Returns the updated favor, or nil
// if the favor is unknown or the kind is invalid.
func (b *Billboard) ApplyVote(id common.Hash, actor common.Address, kind model.VoteKind) *model.Favor {
	if kind != model.VoteKindCancel && kind != model.VoteKindDone {
		log.Warningf("Invalid vote kind %v for favor %v, ignoring", kind, id.Hex())
		return nil
	}
	index := b.indexOf(id)
	if index < 0 {
		log.Warningf("Vote for unknown favor %v, ignoring", id.Hex())
		return nil
	}
	updated := b.favors[index].Copy()
	updated.SetVote(updated.ClientAddr() == actor, kind)
	b.favors[index] = updated
	return updated
}

// ApplyFinalized removes a favor. Returns the removed favor or nil if unknown.
func (b *Billboard) ApplyFinalized(id common.Hash) *model.Favor {
	index := b.indexOf(id)
	if index < 0 {
		log.Warningf("Finalize for unknown favor %v, ignoring", id.Hex())
		return nil
	}
	removed := b.favors[index]
	favors := make([]*model.Favor, 0, len(b.favors)-1)
	favors = append(favors, b.favors[:index]...)
	favors = append(favors, b.favors[index+1:]...)
	b.favors = favors
	return removed
}

// FindByID returns the favor with the given id
func (b *Billboard) FindByID(id common.Hash) (*model.Favor, bool) {
	index := b.indexOf(id)
	if index < 0 {
		return nil, false
	}
	return b.favors[index], true
}

// Favors returns the favors in list order
func (b *Billboard) Favors() []*model.Favor {
	favors := make([]*model.Favor, len(b.favors))
	copy(favors, b.favors)
	return favors
}

// Len returns the number of favors on the billboard
func (b *Billboard) Len() int {
	return len(b.favors)
}

func (b *Billboard) indexOf(id common.Hash) int {
	for i, favor := range b.favors {
		if favor.ID() == id {
			return i
		}
	}
	return -1
}

func (b *Billboard) resolveNames(ctx context.Context, favor *model.Favor) {
	if b.names == nil {
		return
	}
	b.names.Resolve(ctx, favor)
}

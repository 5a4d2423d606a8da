package billboard

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/golang/glog"
	cache "github.com/patrickmn/go-cache"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

const (
	defaultNameExpiry = 10 * time.Minute
	cleanupInterval   = 1 * time.Minute
)

// UserInfoSource retrieves user profiles
type UserInfoSource interface {
	UserInfo(ctx context.Context, addr common.Address) (*model.UserInfo, error)
}

// NewNameResolver returns a NameResolver that caches resolved names for the
// given duration. A zero expiry uses the default of 10 minutes.
func NewNameResolver(source UserInfoSource, expiry time.Duration) *NameResolver {
	if expiry <= 0 {
		expiry = defaultNameExpiry
	}
	return &NameResolver{
		source: source,
		expiry: expiry,
		cache:  cache.New(expiry, cleanupInterval),
	}
}

// NameResolver resolves the display names of favor parties. Only non-empty
// names are cached, so unregistered users are looked up again next time.
type NameResolver struct {
	source UserInfoSource
	expiry time.Duration
	cache  *cache.Cache
}

// Name returns the display name of addr or an empty string if the address is
// null, unregistered or the lookup fails.
func (n *NameResolver) Name(ctx context.Context, addr common.Address) string {
	if model.IsNullAddress(addr) {
		return ""
	}
	key := addr.Hex()
	if name, found := n.cache.Get(key); found {
		return name.(string)
	}
	info, err := n.source.UserInfo(ctx, addr)
	if err != nil {
		log.Errorf("Error resolving name for %v: err: %v", key, err)
		return ""
	}
	if info.Name() == "" {
		return ""
	}
	n.cache.Set(key, info.Name(), n.expiry)
	return info.Name()
}

// Resolve fills in the names of both parties of a favor. A name already set
// on the favor is kept if the lookup comes back empty.
func (n *NameResolver) Resolve(ctx context.Context, favor *model.Favor) {
	if name := n.Name(ctx, favor.ClientAddr()); name != "" || model.IsNullAddress(favor.ClientAddr()) {
		favor.SetClientName(name)
	}
	if name := n.Name(ctx, favor.ProviderAddr()); name != "" || model.IsNullAddress(favor.ProviderAddr()) {
		favor.SetProviderName(name)
	}
}

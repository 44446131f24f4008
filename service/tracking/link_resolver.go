package tracking

import (
	"context"
	"time"

	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/pkg/cacheclient"
	"github.com/QuangTung97/reva-click/pkg/otellib"
	"github.com/QuangTung97/reva-click/pkg/util"
	"github.com/QuangTung97/reva-click/repository"
	"go.uber.org/zap"
)

// MaxCodeLen bounds the codes accepted by the resolver
const MaxCodeLen = 64

// LinkResolver finds a tracking link by its short code
type LinkResolver interface {
	Resolve(ctx context.Context, code string) (model.NullTrackingLink, error)
}

// LocalCache is the in-process level, implemented by memtable.MemTable
type LocalCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttlSeconds int)
	Delete(key string)
}

// RemoteCache is the memcached level, implemented by cacheclient.Client
type RemoteCache interface {
	LeaseGet(key string) (cacheclient.LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) error
	Delete(key string) error
}

type cachedLinkResolver struct {
	provider repository.Provider
	linkRepo repository.TrackingLink

	local   LocalCache
	remote  RemoteCache
	ttl     time.Duration
	metrics *Metrics
}

var _ LinkResolver = &cachedLinkResolver{}

// NewLinkResolver creates a resolver looking up local cache, then memcached, then the database.
// remote can be nil when memcached is disabled.
func NewLinkResolver(
	provider repository.Provider, linkRepo repository.TrackingLink,
	local LocalCache, remote RemoteCache, ttl time.Duration, metrics *Metrics,
) LinkResolver {
	return &cachedLinkResolver{
		provider: provider,
		linkRepo: linkRepo,

		local:   local,
		remote:  remote,
		ttl:     ttl,
		metrics: metrics,
	}
}

func linkCacheKey(code string) string {
	return "link:" + code
}

// EvictLink removes the cached record of code from memcached.
// Local caches of running servers keep it until their TTL ends.
func EvictLink(remote RemoteCache, code string) error {
	if !util.IsShortCode(code) {
		return ErrInvalidArgument
	}
	return remote.Delete(linkCacheKey(code))
}

func (r *cachedLinkResolver) findInDB(ctx context.Context, code string) (model.NullTrackingLink, error) {
	ctx = r.provider.Readonly(ctx)
	return r.linkRepo.FindTrackingLinkByCode(ctx, util.HashFunc(code), code)
}

func (r *cachedLinkResolver) setLocal(key string, data []byte) {
	r.local.Set(key, data, int(r.ttl/time.Second))
}

// Resolve ...
func (r *cachedLinkResolver) Resolve(ctx context.Context, code string) (model.NullTrackingLink, error) {
	if len(code) > MaxCodeLen || !util.IsShortCode(code) {
		return model.NullTrackingLink{}, nil
	}

	logger := otellib.Extract(ctx)
	key := linkCacheKey(code)

	if data, ok := r.local.Get(key); ok {
		link, err := unmarshalLink(data)
		if err == nil {
			r.metrics.observeLinkLookup(linkLookupLocal)
			return model.NullTrackingLink{Valid: true, Link: link}, nil
		}
		logger.Warn("invalid local cached link", zap.String("code", code), zap.Error(err))
		r.local.Delete(key)
	}

	if r.remote == nil {
		return r.resolveFromDB(ctx, code, key)
	}

	output, err := r.remote.LeaseGet(key)
	if err != nil {
		logger.Warn("memcached lease get", zap.String("code", code), zap.Error(err))
		r.metrics.observeLinkLookup(linkLookupRemoteError)
		return r.resolveFromDB(ctx, code, key)
	}

	switch output.Type {
	case cacheclient.LeaseGetTypeOK:
		link, err := unmarshalLink(output.Data)
		if err != nil {
			logger.Warn("invalid remote cached link", zap.String("code", code), zap.Error(err))
			if delErr := r.remote.Delete(key); delErr != nil {
				logger.Warn("memcached delete", zap.String("code", code), zap.Error(delErr))
			}
			return r.resolveFromDB(ctx, code, key)
		}
		r.setLocal(key, output.Data)
		r.metrics.observeLinkLookup(linkLookupRemote)
		return model.NullTrackingLink{Valid: true, Link: link}, nil

	case cacheclient.LeaseGetTypeGranted:
		nullLink, err := r.resolveFromDB(ctx, code, key)
		if err != nil || !nullLink.Valid {
			return nullLink, err
		}
		setErr := r.remote.LeaseSet(key, marshalLink(nullLink.Link), output.LeaseID, uint32(r.ttl/time.Second))
		if setErr != nil {
			logger.Warn("memcached lease set", zap.String("code", code), zap.Error(setErr))
		}
		return nullLink, nil

	default:
		return r.resolveFromDB(ctx, code, key)
	}
}

func (r *cachedLinkResolver) resolveFromDB(ctx context.Context, code string, key string) (model.NullTrackingLink, error) {
	r.metrics.observeLinkLookup(linkLookupDB)

	nullLink, err := r.findInDB(ctx, code)
	if err != nil {
		return model.NullTrackingLink{}, err
	}
	if nullLink.Valid {
		r.setLocal(key, marshalLink(nullLink.Link))
	}
	return nullLink, nil
}

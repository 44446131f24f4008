package cacheclient

import (
	"time"

	"github.com/QuangTung97/go-memcache/memcache"
)

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK for value found
	LeaseGetTypeOK LeaseGetType = iota + 1
	// LeaseGetTypeGranted for the caller owning the lease, must fill the key with LeaseSet
	LeaseGetTypeGranted
	// LeaseGetTypeRejected for another caller already owning the lease
	LeaseGetTypeRejected
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	LeaseID uint64
	Data    []byte
}

// Client wraps memcache client with lease semantics
type Client struct {
	client *memcache.Client
}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// LeaseGet ...
func (c *Client) LeaseGet(key string) (LeaseGetOutput, error) {
	p := c.client.Pipeline()
	defer p.Finish()

	resp, err := p.MGet(key, memcache.MGetOptions{
		N:   5,
		CAS: true,
	})()
	if err != nil {
		return LeaseGetOutput{}, err
	}
	if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
		return LeaseGetOutput{
			Type: LeaseGetTypeRejected,
		}, nil
	}

	if resp.Flags&memcache.MGetFlagW != 0 {
		return LeaseGetOutput{
			Type:    LeaseGetTypeGranted,
			LeaseID: resp.CAS,
		}, nil
	}

	return LeaseGetOutput{
		Type: LeaseGetTypeOK,
		Data: resp.Data,
	}, nil
}

// LeaseSet ...
func (c *Client) LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: ttl,
	})()
	return err
}

// Delete ...
func (c *Client) Delete(key string) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MDel(key, memcache.MDelOptions{})()
	return err
}

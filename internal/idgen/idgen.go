// Package idgen issues short, url-safe request ids.
package idgen

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sqids/sqids-go"
)

const minLength = 8

// Generator encodes the process start time and a sequence number, so ids are
// unique within a process and unlikely to repeat across restarts.
type Generator struct {
	sqids *sqids.Sqids
	epoch uint64
	seq   atomic.Uint64
}

func New() (*Generator, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: minLength,
	})
	if err != nil {
		return nil, err
	}
	return &Generator{sqids: s, epoch: uint64(time.Now().Unix())}, nil
}

func (g *Generator) Next() string {
	n := g.seq.Add(1)
	id, err := g.sqids.Encode([]uint64{g.epoch, n})
	if err != nil {
		return strconv.FormatUint(g.epoch, 36) + strconv.FormatUint(n, 36)
	}
	return id
}

// Decode returns the process epoch and sequence number carried by id.
func (g *Generator) Decode(id string) (epoch, seq uint64, ok bool) {
	nums := g.sqids.Decode(id)
	if len(nums) != 2 {
		return 0, 0, false
	}
	return nums[0], nums[1], true
}

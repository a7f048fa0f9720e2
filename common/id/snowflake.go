// Package id issues time-ordered snowflake ids for requests and transcript messages.
package id

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets the node id. Only the first call has any effect; the server calls it at startup
// and everything else falls back to node 1.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

func New() int64 {
	if err := Init(1); err != nil {
		panic(err)
	}
	return node.Generate().Int64()
}

// Time reports when v was generated, to the millisecond.
func Time(v int64) time.Time {
	return time.UnixMilli(snowflake.ParseInt64(v).Time())
}

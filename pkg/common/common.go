package common

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

func node() *snowflake.Node {
	snowflakeOnce.Do(func() {
		n, err := snowflake.NewNode(rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(1023))
		if err != nil {
			panic(err)
		}
		snowflakeNode = n
	})
	return snowflakeNode
}

// NextID returns a cluster-unique int64 identifier.
func NextID() int64 {
	return node().Generate().Int64()
}

// NewRecordID builds a record identifier scoped to a collection key,
// e.g. "products-1728399217348612096".
func NewRecordID(key string) string {
	return fmt.Sprintf("%s-%d", key, NextID())
}

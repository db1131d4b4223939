// Package id generates snowflake IDs for all persisted entities.
package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
	nodeID   int64 = 1
)

// SetNodeID sets the snowflake node ID. Must be called before the first New,
// typically from main with the configured node ID.
func SetNodeID(id int64) error {
	if node != nil {
		return fmt.Errorf("snowflake node already initialized")
	}
	if id < 0 || id > 1023 {
		return fmt.Errorf("snowflake node ID must be 0-1023, got %d", id)
	}
	nodeID = id
	return nil
}

// New returns a new snowflake ID.
func New() int64 {
	nodeOnce.Do(func() {
		n, err := snowflake.NewNode(nodeID)
		if err != nil {
			panic(fmt.Sprintf("creating snowflake node: %v", err))
		}
		node = n
	})
	return node.Generate().Int64()
}

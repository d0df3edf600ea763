package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// epochMillis is 2026-01-01T00:00:00Z; IDs stay positive for ~69 years after it.
const epochMillis int64 = 1767225600000

// Snowflake generates time-ordered numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	err := binary.Read(rand.Reader, binary.BigEndian, &nodeID)
	if err != nil {
		return 0, err
	}

	return nodeID & (1<<10 - 1), nil // Limiting to 10 bits for node ID
}

// NewSnowflake constructs a Snowflake generator for the given node.
// A negative node picks a random one, which is enough for a single process.
func NewSnowflake(node int64) (*Snowflake, error) {
	if node < 0 {
		random, err := generateRandomNodeID()
		if err != nil {
			return nil, fmt.Errorf("generate snowflake node id: %w", err)
		}
		node = random
	}

	snowflake.Epoch = epochMillis

	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node %d: %w", node, err)
	}

	return &Snowflake{node: n}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

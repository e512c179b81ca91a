// Package neo4jstore connects to the topology store: islands, ports,
// seaplanes and the relationships between them.
//
// Graph layout:
//
//	(:Island)-[:HAS_PORT]->(:Port)            the warehouse port is also :Warehouse
//	(:Seaplane)-[:STATIONED_AT]->(:Port)      a seaplane on the ground
//	(:Seaplane)-[:FLYING_FROM]->(:Port)       a seaplane in the air, with
//	(:Seaplane)-[:FLYING_TO]->(:Port)         both flight edges
//
// Every repository operation is a single Cypher statement run as one
// auto-committed managed transaction, so a relationship swap is never
// observed half done.
package neo4jstore

import (
	"context"

	"galapagos/internal/pkg/errs"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Config addresses the topology store.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Store wraps the driver shared by the topology repositories. It is safe
// for concurrent use.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// Connect creates the driver and verifies that the server is reachable.
//
// Example:
//
//	store, err := neo4jstore.Connect(ctx, neo4jstore.Config{
//	    URI:      "neo4j://localhost:7687",
//	    Username: "neo4j",
//	    Password: "secret",
//	})
//	if err != nil {
//	    return err
//	}
//	defer store.Close(context.Background())
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("neo4jUri", err)
	}

	if err = driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(context.Background())
		return nil, errs.NewStoreUnavailableError(storeName, err)
	}

	return &Store{driver: driver, database: cfg.Database}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Read runs a read-only statement, routed to readers in a cluster.
func (s *Store) Read(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	res, err := neo4j.ExecuteQuery(ctx, s.driver, cypher, params, neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.database),
		neo4j.ExecuteQueryWithReadersRouting(),
	)
	return res, MapError(err)
}

// Write runs a statement that changes the graph.
func (s *Store) Write(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	res, err := neo4j.ExecuteQuery(ctx, s.driver, cypher, params, neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.database),
		neo4j.ExecuteQueryWithWritersRouting(),
	)
	return res, MapError(err)
}

// EnsureConstraints creates the uniqueness constraints the repositories
// rely on. It is idempotent.
func (s *Store) EnsureConstraints(ctx context.Context) error {
	for _, cypher := range []string{
		"CREATE CONSTRAINT seaplane_id IF NOT EXISTS FOR (s:Seaplane) REQUIRE s.id IS UNIQUE",
		"CREATE CONSTRAINT port_id IF NOT EXISTS FOR (p:Port) REQUIRE p.id IS UNIQUE",
		"CREATE CONSTRAINT port_name IF NOT EXISTS FOR (p:Port) REQUIRE p.name IS UNIQUE",
		"CREATE CONSTRAINT island_name IF NOT EXISTS FOR (i:Island) REQUIRE i.name IS UNIQUE",
	} {
		if _, err := s.Write(ctx, cypher, nil); err != nil {
			return err
		}
	}
	return nil
}

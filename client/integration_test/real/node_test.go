//go:build integration
// +build integration

package client_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jeevavj/megam-api/client"
)

// TestNodeLifecycleE2E logs in, launches a node from an existing predef and
// waits for the gateway to report it.
func TestNodeLifecycleE2E(t *testing.T) {
	cfg, err := client.LoadConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	c, err := client.NewFromConfig(cfg, credentials(t))
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := c.Login(ctx); err != nil {
		t.Fatalf("login: %v", err)
	}

	predefs, err := c.ListPredefs(ctx)
	if err != nil {
		t.Fatalf("list predefs: %v", err)
	}
	if len(predefs) == 0 {
		t.Skip("gateway has no predefs to launch from")
	}
	p := predefs[0]

	name := fmt.Sprintf("it-%s.megam.co", uuid.NewString()[:8])
	ack, err := c.CreateNode(ctx, client.NewNodeRequest{
		NodeName: name,
		Command:  "launch",
		Predefs:  client.NodePredefs{Name: p.Name},
	})
	if err != nil {
		t.Fatalf("create node: %v", err)
	}
	if ack.IsError() {
		t.Fatalf("create node rejected: %+v", ack)
	}

	node, err := c.AwaitNode(ctx, name, nil)
	if err != nil {
		t.Fatalf("await node: %v", err)
	}
	if node.Name != name {
		t.Fatalf("node name mismatch want %s got %s", name, node.Name)
	}
}

// TestWrongSecretRejectedE2E confirms the gateway verifies signatures.
func TestWrongSecretRejectedE2E(t *testing.T) {
	cfg, err := client.LoadConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	creds := credentials(t)
	creds.SecretKey += "x"
	c, err := client.NewFromConfig(cfg, creds)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	_, err = c.ListNodes(context.Background())
	if !client.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

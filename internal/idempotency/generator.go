package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Scope represents the scope of idempotency
type Scope string

const (
	// ScopePaymentIntent covers payment intent creation at checkout
	ScopePaymentIntent Scope = "payment_intent"
)

// Generator generates idempotency keys
type Generator struct{}

// NewGenerator creates a new idempotency key generator
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateKey derives a stable key from a scope and parameters.
// Parameter order does not matter.
func (g *Generator) GenerateKey(scope Scope, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(scope))
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(":%s=%v", k, params[k]))
	}

	hash := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%s-%s", scope, hex.EncodeToString(hash[:8]))
}

// ValidateKey validates if an idempotency key matches expected parameters
func (g *Generator) ValidateKey(scope Scope, params map[string]interface{}, key string) bool {
	return g.GenerateKey(scope, params) == key
}

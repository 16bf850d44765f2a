package idempotency

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey_IsStableAndOrderIndependent(t *testing.T) {
	g := NewGenerator()

	a := g.GenerateKey(ScopePaymentIntent, map[string]interface{}{
		"user_id": "user_1",
		"country": "DE",
		"items":   "edge-router:1",
	})
	b := g.GenerateKey(ScopePaymentIntent, map[string]interface{}{
		"items":   "edge-router:1",
		"country": "DE",
		"user_id": "user_1",
	})

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "payment_intent-"))
	assert.Len(t, a, len("payment_intent-")+16)
}

func TestGenerateKey_DiffersByParams(t *testing.T) {
	g := NewGenerator()

	de := g.GenerateKey(ScopePaymentIntent, map[string]interface{}{"country": "DE"})
	fr := g.GenerateKey(ScopePaymentIntent, map[string]interface{}{"country": "FR"})

	assert.NotEqual(t, de, fr)
	assert.True(t, g.ValidateKey(ScopePaymentIntent, map[string]interface{}{"country": "DE"}, de))
	assert.False(t, g.ValidateKey(ScopePaymentIntent, map[string]interface{}{"country": "DE"}, fr))
}

package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex ord_01HZX3Q6N5R2W8KJ0M4T7YB9CD
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short, human readable ID with a prefix.
// Total length is capped at 12 characters, e.g. `ORD-XYZ12A8Q`.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")
	id = strings.ReplaceAll(id, "_", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(prefix + id)
}

const (
	UUID_PREFIX_USER           = "user"
	UUID_PREFIX_PRODUCT        = "prod"
	UUID_PREFIX_ORDER          = "ord"
	UUID_PREFIX_PAYMENT_INTENT = "pi_local"
	UUID_PREFIX_EVENT          = "evt"
	UUID_PREFIX_IDEMPOTENCY    = "idem"
)

const (
	SHORT_ID_PREFIX_ORDER = "ORD-"
)

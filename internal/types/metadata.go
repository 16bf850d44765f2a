package types

// Metadata holds free-form string key-value pairs attached to orders and payment intents
type Metadata map[string]string

// Merge returns a copy of m with the entries of other applied on top
func (m Metadata) Merge(other Metadata) Metadata {
	out := make(Metadata, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

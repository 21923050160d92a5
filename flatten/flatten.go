// Package flatten turns nested JSON objects into flat records whose keys
// join the path segments with underscores.
package flatten

// Options controls how Unroll walks an object.
type Options struct {
	// Blacklist lists keys dropped wherever they appear, including whole
	// nested objects.
	Blacklist []string
	// Prefix is prepended to every key as "prefix_key".
	Prefix string
	// NoPrefix lists keys whose nested values are flattened without the
	// key itself becoming a path segment. The stats API wraps per-game
	// numbers in a "stat" object whose name carries no information.
	NoPrefix []string
}

// Unroll flattens a decoded JSON object into a single-level record.
// Nested objects recurse with their key appended to the prefix; every
// other value (including arrays) is copied through as a leaf. The input
// map is never mutated.
func Unroll(content map[string]any, opts Options) map[string]any {
	out := make(map[string]any, len(content))
	unrollInto(out, content, opts)
	return out
}

func unrollInto(out map[string]any, content map[string]any, opts Options) {
	for k, v := range content {
		if contains(opts.Blacklist, k) {
			continue
		}
		key := k
		if opts.Prefix != "" {
			key = opts.Prefix + "_" + k
		}
		if nested, ok := v.(map[string]any); ok {
			down := opts
			down.Prefix = key
			if contains(opts.NoPrefix, k) {
				down.Prefix = opts.Prefix
			}
			unrollInto(out, nested, down)
			continue
		}
		out[key] = v
	}
}

func contains(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

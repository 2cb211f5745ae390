// Package resolver turns driver identifiers into raw driver records.
//
// 🚀 What does it do?
//
//	environment.Resolver is the single seam between the derivation engine
//	and wherever driver data sheets live. This package provides the stock
//	implementations:
//
//	  Files         → reads the identifier as a filesystem path
//	  DirStore      → <dir>/<key>.json | .yaml | .yml
//	  MemoryStore   → in-process map, handy for tests and embedding
//	  RedisStore    → one string value per key (go-redis)
//	  PostgresStore → one row per key (lib/pq)
//	  Chain         → path first, then each Store in order
//
// ✨ Keys:
//   - Key normalises identifiers: UUIDs to their canonical lower-case form,
//     everything else trimmed and lower-cased.
//   - Stores report a miss with ErrNotFound; Chain moves on to the next one.
//   - Every failure leaving Chain wraps environment.ErrAccess.
//
// ⚙️ Usage:
//
//	chain := resolver.NewChain(
//		resolver.WithPathRoot("./drivers"),
//		resolver.WithStore("redis", resolver.NewRedisStore(rdb)),
//		resolver.WithStore("postgres", resolver.NewPostgresStore(db)),
//		resolver.WithWriteBack(),
//	)
//	env := environment.New(chain)
package resolver

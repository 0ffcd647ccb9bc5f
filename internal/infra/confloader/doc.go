// Package confloader provides configuration loading mechanism.
//
// It uses Koanf for flexible configuration loading from multiple
// sources with priority: Flag > Env > File > Default.
//
// Files:
//   - loader.go: Loader with file, env and map sources
//   - provider.go: koanf map provider for flags and tests
package confloader

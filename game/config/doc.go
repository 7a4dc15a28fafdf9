// Package config provides variant configuration management for King of
// the Hill chess.
//
// The config package handles:
//   - Loading variant configurations from JSON files
//   - Configuration validation and caching
//   - The built-in default configuration (classic King of the Hill)
//
// Configuration Format:
//
// Variant configurations are stored as JSON files in the configs
// directory. Each configuration defines:
//   - The starting layout as eight rows of case-encoded piece letters
//     (uppercase white, lowercase black, '.' empty), rank 8 first
//   - The hill squares that end the game when a king reaches them
//   - Message templates used by the UIs
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific variant
//	gameConfig, err := manager.LoadConfig("mirrored-hill")
//
//	// Get the built-in default
//	defaultConfig := manager.GetDefault()
//
// All configurations are validated for board dimensions, legal piece
// characters, exactly one king per side, well-formed hill squares, and
// required messages.
package config

// Package config handles loading and validating litedb configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// Only the two sections the library owns are modelled: database and
// logging. Applications embedding litedb with a wider configuration can
// include these structs in their own config tree instead of calling Load.
//
// Security Considerations:
//   - The config file should have restricted permissions (0600)
//   - Prefer environment variables for paths injected by orchestration
//
// Performance Characteristics:
//   - Configuration is loaded once at startup
//   - No runtime overhead after initial load
//
// Usage:
//
//	cfg, err := config.Load("configs/litedb.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Path)
package config

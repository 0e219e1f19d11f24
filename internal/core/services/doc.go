// Package services implements the core application logic.
//
// Services implement the driving ports and orchestrate the driven
// ports. The central piece is Pipeline, which loads one document,
// fans its text out to the configured generation services, and drives
// the artefact store's upsert/merge protocol for each output.
//
// # Import Rules
//
//   - Can Import: domain, ports, logger
//   - Cannot Import: Any adapter, loader, or extractor package
package services

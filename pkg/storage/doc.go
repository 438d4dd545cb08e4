// Package storage implements the storage-root side of a relocation.
//
// A configuration lists its storage roots in config/core/roots.yml. Each
// root keeps, independently of any configuration, a lookup file at
// <root>/tank/config/tank_configs.yml naming every configuration that uses
// it. Roots reads the former; MappingStore appends to and updates the
// latter without ever dropping entries that belong to other
// configurations.
package storage

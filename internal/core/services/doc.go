// Package services implements the core application services: the term
// index, search and exploration, the recommendation engine and the
// corpus watcher. Services depend only on the driven ports and are
// exposed to adapters through the driving ports.
package services

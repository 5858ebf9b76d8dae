// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features: account
// registration, credential verification with token issuance, and the
// shopping list item catalog.
package service

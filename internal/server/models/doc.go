// Package models defines the records persisted by the server and the
// validation applied to them at the store boundary.
package models

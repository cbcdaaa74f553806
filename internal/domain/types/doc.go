// Package types holds the plain value types of the domain: the generic
// Loading/Success/Error view state, the aggregate home screen state and the
// release records it displays.
package types

// Package user holds the user-management stub and the view model that
// drives it. No real user storage exists yet; the stub fails fast.
package user

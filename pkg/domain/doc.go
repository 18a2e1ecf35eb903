// Package domain contains the media-server records consumed by the application.
// The records (items, people, media streams and users) are owned by the remote
// server; this package only mirrors the subset of their wire format that the
// presentation helpers read. None of these types carry infrastructure concerns
// so they can be shared across packages.
package domain

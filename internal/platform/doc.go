package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, media placement, folder sorting, application launching
// on macOS and playlist enumeration.

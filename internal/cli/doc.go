package cli

// Package cli wires the cobra command tree: global flags, the per-invocation
// logger and stores, the download commands and the helper commands for apps,
// folders, config and history.

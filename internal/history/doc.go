package history

// Package history persists the log of completed downloads as a JSON file and
// answers dedup lookups against it. The file is read fresh on every call.

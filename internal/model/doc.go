package model

// Package model defines domain data structures used across the app: media
// types and sources, download tasks and their status, history records,
// playlist entities, and the error kinds surfaced at the CLI boundary.

package download

// Package download implements the download pipeline built on top of yt-dlp
// (via github.com/lrstanley/go-ytdlp). It validates and normalizes URLs,
// checks the history for duplicates, retries the extractor, tags audio and
// hands the produced files to the placement step.

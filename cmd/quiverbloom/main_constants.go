package main

// Command-line defaults
const (
	defaultAlgorithm = "1"
	defaultGIFDelay  = 2 // hundredths of a second, ~50 fps
)

// Output formats
const (
	formatCSV  = "csv"
	formatJSON = "json"
	extGIF     = ".gif"
)

// Exit codes and layout
const (
	exitUsage   = 2
	tabPadding  = 2
	dirPerm     = 0o755
	hexColorLen = 7 // "#rrggbb"
)

// frameFileFormat names PNG frames so they sort in playback order.
const frameFileFormat = "frame_%05d.png"

// Progress reporting
const (
	progressInterval = 10 // Print progress every N%
	percentScale     = 100
)

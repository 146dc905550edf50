package main

// Command-line defaults
const (
	defaultAlgorithm  = "1"
	defaultSampleRate = 48000
	defaultFrames     = 100
	defaultPoints     = 2000
	minRequiredArgs   = 1
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	maxInt16        = 32767.0
	maxInt24        = 8388607.0
	stereoChannels  = 2
	wavFormatPCM    = 1
)

const msPerSecond = 1000.0

// framesPerBatch bounds how many frames are held in memory at once.
const framesPerBatch = 32
